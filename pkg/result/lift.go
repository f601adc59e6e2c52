package result

// Lift aggregates an ordered sequence of results into one. It folds left
// to right: all successes yield a success holding the values in input
// order, and the first failure is returned as-is without looking at the
// remaining elements.
func Lift[V any, E error](rs []Result[V, E]) Result[[]V, E] {
	values := make([]V, 0, len(rs))
	for _, r := range rs {
		if r.IsFailure() {
			return Failure[[]V, E](r.err)
		}
		values = append(values, r.value)
	}
	return Success[[]V, E](values)
}

// LiftMap maps f over input and aggregates the outcomes, stopping at the
// first failure. Elements past the failing one are never visited.
func LiftMap[T any, V any, E error](input []T, f func(T) Result[V, E]) Result[[]V, E] {
	values := make([]V, 0, len(input))
	for _, in := range input {
		r := f(in)
		if r.IsFailure() {
			return Failure[[]V, E](r.err)
		}
		values = append(values, r.value)
	}
	return Success[[]V, E](values)
}
