// Package pipe provides a fluent Chain[T] wrapper around Result[T] for
// building synchronous railway pipelines without branching at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or a value
// - Then/ThenTry: compose result-returning or error-returning functions
// - MapValue: transform the successful value in place
// - Ensure: convert to failure when a predicate does not hold
// - Tap/TapFailure: side effects without changing the result
// - Finally: collapse the chain into a final value via handlers
//
// Type-changing steps are package-level functions (Then, MapTo, Finally)
// because Go methods cannot introduce new type parameters.
package pipe
