package chain

import (
	"time"

	"github.com/google/uuid"

	"github.com/neuman968/result/pkg/result"
)

// Chain wraps a result.Result with trace metadata to enable fluent
// chaining. The id and creation time identify one pipeline run across
// every step; they never take part in result equality.
type Chain[V any, E error] struct {
	id        uuid.UUID
	createdAt time.Time
	res       result.Result[V, E]
}

// Start creates a new chain from a result.Result.
func Start[V any, E error](r result.Result[V, E]) Chain[V, E] {
	return Chain[V, E]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		res:       r,
	}
}

// FromValue creates a new chain from a successful value.
func FromValue[V any, E error](v V) Chain[V, E] {
	return Start(result.Success[V, E](v))
}

// Result returns the underlying result.Result.
func (c Chain[V, E]) Result() result.Result[V, E] {
	return c.res
}

// ID returns the trace id assigned when the chain was started.
func (c Chain[V, E]) ID() uuid.UUID {
	return c.id
}

// CreatedAt returns the chain's creation time (UTC).
func (c Chain[V, E]) CreatedAt() time.Time {
	return c.createdAt
}

func (c Chain[V, E]) step(r result.Result[V, E]) Chain[V, E] {
	return Chain[V, E]{id: c.id, createdAt: c.createdAt, res: r}
}

// Then composes a function that already returns a result.Result.
func (c Chain[V, E]) Then(onSuccess func(V) result.Result[V, E]) Chain[V, E] {
	if c.res.IsFailure() {
		return c
	}
	return c.step(result.FlatMap(c.res, onSuccess))
}

// ThenTry composes a function that returns (V, error), intercepting
// E-typed errors into a failure. Errors of any other type panic, the
// same way result.TryMap does.
func (c Chain[V, E]) ThenTry(try func(V) (V, error)) Chain[V, E] {
	if c.res.IsFailure() {
		return c
	}
	return c.step(result.TryMap(c.res, try))
}

// Map transforms the successful value to a new value of the same type.
func (c Chain[V, E]) Map(onSuccess func(V) V) Chain[V, E] {
	return c.step(result.Map(c.res, onSuccess))
}

// MapError transforms the stored error without leaving the error type.
func (c Chain[V, E]) MapError(onFailure func(E) E) Chain[V, E] {
	return c.step(result.MapError(c.res, onFailure))
}

// Ensure triggers side effects for success or failure without changing
// the result. Either handler may be nil.
func (c Chain[V, E]) Ensure(onSuccess func(V), onFailure func(E)) Chain[V, E] {
	if onSuccess != nil {
		c.res.Success(onSuccess)
	}
	if onFailure != nil {
		c.res.Failure(onFailure)
	}
	return c
}

// RepeatUntil applies onSuccess repeatedly until the chain fails or
// until reports true for the current value.
func (c Chain[V, E]) RepeatUntil(onSuccess func(V) result.Result[V, E], until func(V) bool) Chain[V, E] {
	if c.res.IsFailure() {
		return c
	}
	for {
		c = c.Then(onSuccess)
		if c.res.IsFailure() || until(c.res.Get()) {
			return c
		}
	}
}

// GetOrElse collapses the chain to the success value or fallback applied
// to the stored error.
func (c Chain[V, E]) GetOrElse(fallback func(E) V) V {
	return c.res.GetOrElse(fallback)
}

// Switch moves the chain to a new value type via a result-returning
// function, preserving trace metadata.
func Switch[V any, E error, U any](c Chain[V, E], onSuccess func(V) result.Result[U, E]) Chain[U, E] {
	return Chain[U, E]{
		id:        c.id,
		createdAt: c.createdAt,
		res:       result.FlatMap(c.res, onSuccess),
	}
}

// Transform moves the chain to a new value type via a pure function,
// preserving trace metadata.
func Transform[V any, E error, U any](c Chain[V, E], onSuccess func(V) U) Chain[U, E] {
	return Chain[U, E]{
		id:        c.id,
		createdAt: c.createdAt,
		res:       result.Map(c.res, onSuccess),
	}
}

// Finally collapses the chain to a final value, delegating to
// result.Fold.
func Finally[V any, E error, X any](c Chain[V, E], onSuccess func(V) X, onFailure func(E) X) X {
	return result.Fold(c.res, onSuccess, onFailure)
}
