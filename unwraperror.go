package result

import "errors"

// ErrInvalidAccess is the panic value raised when Err is called on a
// successful result.  It carries no payload; it signals a logic defect in the
// caller rather than a modeled failure, and is not meant to be recovered in
// ordinary control flow.
var ErrInvalidAccess = errors.New("failed to access error of a successful result")

// ErrorDescriber is the optional interface a failure payload type may satisfy
// to contribute a human-readable description to an UnwrapError's message.
// Payload types that do not implement it get a generic message.
type ErrorDescriber interface {
	ErrorDescription() string
}

// UnwrapError is the panic value raised when Unwrap is called on a result
// holding a failure.  It keeps the original failure payload in Err so a
// recover site does not lose the error information to a rendered string.
type UnwrapError[F any] struct {
	// Err is the failure payload held by the result that was unwrapped.
	Err F
}

func (e *UnwrapError[F]) Error() string {
	if d, ok := any(e.Err).(ErrorDescriber); ok {
		return "failed to unwrap result: " + d.ErrorDescription()
	}
	return "failed to unwrap result"
}
