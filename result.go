// Package result provides a generic discriminated container for the outcome of
// an operation that can either succeed with a value or fail with an error value.
// A Result holds exactly one of its two payloads and makes the possibility of
// failure part of a value's type instead of an out-of-band convention.
//
// Results are plain immutable values: predicates and accessors never modify the
// container, and transformations like Map and MapErr always produce a new one.
// Calling an accessor that disagrees with the container's state is a programmer
// error and panics; see Unwrap and Err.
package result

// Result holds either a success payload of type S or a failure payload of
// type F, never both and never neither.
//
// The zero value of a Result is a success holding the zero value of S.
type Result[S, F any] struct {
	val    S
	err    F
	failed bool
}

// Success creates a Result holding the success payload val.
func Success[S, F any](val S) Result[S, F] {
	return Result[S, F]{val: val}
}

// Failure creates a Result holding the failure payload err.
func Failure[S, F any](err F) Result[S, F] {
	return Result[S, F]{err: err, failed: true}
}

// From builds a Result from a conventional Go (value, error) pair.
// A nil error produces a success holding val; a non-nil error produces a
// failure holding err.
func From[S any](val S, err error) Result[S, error] {
	if err != nil {
		return Failure[S, error](err)
	}
	return Success[S, error](val)
}

// HasValue reports whether r holds a success payload.
func (r Result[S, F]) HasValue() bool {
	return !r.failed
}

// HasError reports whether r holds a failure payload.
func (r Result[S, F]) HasError() bool {
	return r.failed
}

// OK reports whether r is successful.  It is equivalent to HasValue and exists
// so a Result can be used directly as a branch condition.
func (r Result[S, F]) OK() bool {
	return !r.failed
}

// Unwrap returns the success payload.
// If r holds a failure, Unwrap panics with an *UnwrapError[F] carrying the
// failure payload.
func (r Result[S, F]) Unwrap() S {
	if r.failed {
		panic(&UnwrapError[F]{Err: r.err})
	}
	return r.val
}

// UnwrapOr returns the success payload, or fallback if r holds a failure.
func (r Result[S, F]) UnwrapOr(fallback S) S {
	if r.failed {
		return fallback
	}
	return r.val
}

// Err returns the failure payload.
// If r holds a success, Err panics with ErrInvalidAccess: asking a successful
// result for its error is a logic defect in the caller, not a modeled failure.
func (r Result[S, F]) Err() F {
	if !r.failed {
		panic(ErrInvalidAccess)
	}
	return r.err
}

// MapVoid returns the Void counterpart of r, calling fn with the success
// payload when r is successful.  A failure payload propagates unchanged and fn
// is not called.
func (r Result[S, F]) MapVoid(fn func(S)) Void[F] {
	if r.failed {
		return VoidFailure(r.err)
	}
	fn(r.val)
	return VoidSuccess[F]()
}
