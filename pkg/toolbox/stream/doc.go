// Package stream lifts the railway combinators over channels for
// concurrent processing of many results. A Stage is a function from one
// result to another; Run and Pipe apply a stage with a configurable
// number of worker goroutines, fanning workers out over a shared input
// channel and closing the output once all workers drain.
//
// Common usage:
// - Emit/EmitResults: feed values into a channel of results
// - Run: apply a same-typed stage with N workers
// - Pipe: apply a type-changing stage with N workers
// - BindStage/MapStage/TryStage/EnsureStage/TapStage: build stages
// - Finalize: eliminate a channel of results into plain values
// - Collect: gather everything into a slice
package stream
