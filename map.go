package result

// The type-changing transforms live here as package-level functions because Go
// methods cannot introduce new type parameters.  Transforms that keep every
// type parameter of the receiver are methods: Result.MapVoid and Void.Map.

// Map transforms the success payload of r with fn, producing a Result with the
// new success type and the failure type unchanged.  If r holds a failure, fn
// is not called and the failure payload propagates unchanged.
func Map[S, F, S2 any](r Result[S, F], fn func(S) S2) Result[S2, F] {
	if r.failed {
		return Failure[S2](r.err)
	}
	return Success[S2, F](fn(r.val))
}

// MapErr transforms the failure payload of r with fn, producing a Result with
// the new failure type and the success type unchanged.  If r holds a success,
// fn is not called and the success payload propagates unchanged.
func MapErr[S, F, F2 any](r Result[S, F], fn func(F) F2) Result[S, F2] {
	if !r.failed {
		return Success[S, F2](r.val)
	}
	return Failure[S](fn(r.err))
}

// VoidMap calls fn once when r is successful and wraps its return value as the
// success payload of a new Result.  If r holds a failure, fn is not called and
// the failure payload propagates unchanged.
func VoidMap[F, S2 any](r Void[F], fn func() S2) Result[S2, F] {
	if r.failed {
		return Failure[S2](r.err)
	}
	return Success[S2, F](fn())
}

// VoidMapErr transforms the failure payload of r with fn, producing a Void
// with the new failure type.  A successful r stays successful and fn is not
// called.
func VoidMapErr[F, F2 any](r Void[F], fn func(F) F2) Void[F2] {
	if !r.failed {
		return VoidSuccess[F2]()
	}
	return VoidFailure(fn(r.err))
}
