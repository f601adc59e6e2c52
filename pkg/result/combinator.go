package result

// Fold collapses r into a single value by invoking exactly one of the two
// branch functions. It is the primitive every other combinator is built
// from. Fold never recovers panics raised inside a branch; those belong
// to the caller.
func Fold[V any, E error, X any](r Result[V, E], onSuccess func(V) X, onFailure func(E) X) X {
	if r.ok {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}

// Map applies f to the success value. A failure passes through untouched
// and f is never called.
func Map[V any, E error, U any](r Result[V, E], f func(V) U) Result[U, E] {
	return Fold(r,
		func(v V) Result[U, E] { return Success[U, E](f(v)) },
		Failure[U, E])
}

// MapError applies f to the stored error. A success passes through
// untouched and f is never called.
func MapError[V any, E error, EE error](r Result[V, E], f func(E) EE) Result[V, EE] {
	return Fold(r,
		Success[V, EE],
		func(e E) Result[V, EE] { return Failure[V, EE](f(e)) })
}

// FlatMap applies f to the success value and returns its result directly,
// flattening one level of nesting. A failure passes through.
func FlatMap[V any, E error, U any](r Result[V, E], f func(V) Result[U, E]) Result[U, E] {
	return Fold(r, f, Failure[U, E])
}

// FlatMapError applies f to the stored error and returns its result
// directly. A success passes through.
func FlatMapError[V any, E error, EE error](r Result[V, E], f func(E) Result[V, EE]) Result[V, EE] {
	return Fold(r, Success[V, EE], f)
}

// TryMap applies an error-returning transform to the success value with
// the same typed interception as Of: a nil error yields a success, an
// E-matching error yields a failure, and anything else panics. A failure
// passes through and f is never called.
func TryMap[V any, E error, U any](r Result[V, E], f func(V) (U, error)) Result[U, E] {
	return FlatMap(r, func(v V) Result[U, E] {
		return Of[U, E](func() (U, error) { return f(v) })
	})
}

// OnSuccess runs f with the success value as a side effect and returns
// the receiver unchanged either way.
func (r Result[V, E]) OnSuccess(f func(V)) Result[V, E] {
	if r.ok {
		f(r.value)
	}
	return r
}

// OnFailure runs f with the stored error as a side effect and returns
// the receiver unchanged either way.
func (r Result[V, E]) OnFailure(f func(E)) Result[V, E] {
	if !r.ok {
		f(r.err)
	}
	return r
}

// Success invokes f with the held value when r is a success; the failure
// branch is a no-op.
func (r Result[V, E]) Success(f func(V)) {
	Fold(r, func(v V) struct{} {
		f(v)
		return struct{}{}
	}, func(E) struct{} {
		return struct{}{}
	})
}

// Failure invokes f with the stored error when r is a failure; the
// success branch is a no-op.
func (r Result[V, E]) Failure(f func(E)) {
	Fold(r, func(V) struct{} {
		return struct{}{}
	}, func(e E) struct{} {
		f(e)
		return struct{}{}
	})
}

// Any returns predicate(value) for a success and false for a failure.
// A panicking predicate also yields false: unlike the intercepting
// combinators, Any swallows every panic from its predicate, not just
// E-typed errors. Callers who need the stricter rule should use TryMap
// and inspect the outcome instead.
func (r Result[V, E]) Any(predicate func(V) bool) (matched bool) {
	if !r.ok {
		return false
	}
	defer func() {
		if recover() != nil {
			matched = false
		}
	}()
	return predicate(r.value)
}
