package result

// Void is the Result specialization for operations whose success carries no
// payload.  It stores at most a failure payload of type F; absence of the
// failure payload means success.  Apart from having no success accessor, it
// behaves exactly like Result.
//
// The zero value of a Void is a success.
type Void[F any] struct {
	err    F
	failed bool
}

// VoidSuccess creates a successful Void.
func VoidSuccess[F any]() Void[F] {
	return Void[F]{}
}

// VoidFailure creates a Void holding the failure payload err.
func VoidFailure[F any](err F) Void[F] {
	return Void[F]{err: err, failed: true}
}

// HasError reports whether r holds a failure payload.
func (r Void[F]) HasError() bool {
	return r.failed
}

// OK reports whether r is successful.
func (r Void[F]) OK() bool {
	return !r.failed
}

// Unwrap asserts that r is successful.  There is no payload to return; if r
// holds a failure, Unwrap panics with an *UnwrapError[F] carrying the failure
// payload, and otherwise it does nothing.
func (r Void[F]) Unwrap() {
	if r.failed {
		panic(&UnwrapError[F]{Err: r.err})
	}
}

// Err returns the failure payload.
// If r is successful, Err panics with ErrInvalidAccess.
func (r Void[F]) Err() F {
	if !r.failed {
		panic(ErrInvalidAccess)
	}
	return r.err
}

// Map calls fn once when r is successful and returns a successful Void.
// A failure payload propagates unchanged and fn is not called.
func (r Void[F]) Map(fn func()) Void[F] {
	if r.failed {
		return r
	}
	fn()
	return VoidSuccess[F]()
}
