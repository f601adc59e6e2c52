package result

// Pair groups the two values a Fanout produces.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Fanout pairs the success value of r with the success value of other.
// other is evaluated lazily, only when r succeeded. The first failure
// encountered wins: r's error if r failed, otherwise other's.
func Fanout[V any, E error, U any](r Result[V, E], other func() Result[U, E]) Result[Pair[V, U], E] {
	return FlatMap(r, func(v V) Result[Pair[V, U], E] {
		return Map(other(), func(u U) Pair[V, U] {
			return Pair[V, U]{First: v, Second: u}
		})
	})
}
