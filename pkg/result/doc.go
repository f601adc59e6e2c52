// Package result provides a two-variant Result[V, E] container and a set
// of combinators for composing fallible computations without using
// panics as control flow. A computation either produces a value of V or
// fails with a typed error E; chains of combinators short-circuit past
// the first failure while preserving, or deliberately transforming, the
// error type.
//
// Key operations:
// - Success/Failure: construct a Result[V, E] directly
// - Of/Capture: run a fallible computation and intercept E-typed errors
// - Fold: collapse to a single value via one of two branch functions
// - Map/MapError/FlatMap/FlatMapError: transform one side of the result
// - TryMap: apply an error-returning transform with typed interception
// - OnSuccess/OnFailure: side-effect hooks that return the original
// - Fanout: pair with a lazily evaluated second result
// - Lift/LiftMap: aggregate an ordered sequence, first failure wins
// - Get/GetOrNil/GetOrElse/Destructure: extract the held value or error
//
// Interception is typed: Of, Capture and TryMap only convert errors
// matching E into a failure and re-raise everything else, so unrelated
// defects are never silently swallowed. The single exception is Any,
// which swallows all predicate panics (see its doc).
package result
