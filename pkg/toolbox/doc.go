// Package toolbox provides the core value types for railway-oriented
// composition: Maybe[T] for optional values, Result[T] for fallible
// outcomes, and a structured Error carrying code, name, message and an
// optional cause.
//
// Values are immutable after construction and carry value semantics, so
// they are safe to share between goroutines without synchronization.
// Failure and absence are sticky: once a chain produces None or a failed
// Result, Bind/Map skip user functions until a terminal Match/Reduce
// consumes the chain.
//
// Key constructs:
// - Some/None: construct Maybe[T]
// - Success/Failure/FromValue/FromError: construct Result[T]
// - NewError/NamedError/CodedError/FromCause: construct Error
// - Bind/Map/Match: chain and eliminate results
// - Ensure/Tap/TapFailure: validate and observe without branching
// - Join2/Join3/JoinAll: applicative merge of independent results
// - Try: run a fallible call inside a fault boundary
package toolbox
