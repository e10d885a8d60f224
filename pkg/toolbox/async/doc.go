// Package async mirrors the synchronous combinators over pending
// computations. A Future[T] is a handle on a Result[T] that is still
// being produced; it starts running when created and settles exactly
// once.
//
// Key constructs:
// - Go/GoResult: start a computation inside the fault boundary
// - Resolve: lift an already settled Result into a Future
// - Await: the single suspension point, honoring context cancellation
// - Bind/Map/Ensure/Tap: strict asynchronous mirrors that never start the
//   next step before the prior future settles
// - Match: terminal elimination of a pending result
// - Join2/Join3/JoinAll/AwaitAll: fan out all inputs, then inspect
//   outcomes in fixed left-to-right order
//
// The package introduces no locking and no shared mutable state; a future
// is written once by its producer goroutine and read after its done
// channel closes.
package async
