// Package chain provides a fluent wrapper around result.Result[V, E]
// for building synchronous pipelines without branching on the result at
// every step. Each chain carries a uuid trace id and a UTC creation
// timestamp so a run stays identifiable through all of its steps.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a value
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map/MapError: transform the held value or error in place
// - Ensure: run side effects on success or failure, result unchanged
// - RepeatUntil: re-apply a step until a condition holds or it fails
// - Switch/Transform: move to a new value type, metadata preserved
// - Finally/GetOrElse: collapse the chain into a final value
//
// Once a step fails, the remaining success-side steps are skipped and
// the failure flows through unchanged, exactly as in package result.
package chain
