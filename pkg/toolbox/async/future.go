package async

import (
	"context"

	"github.com/ZeidLab/toolbox-go/pkg/toolbox"
)

// Try is a deferred fallible call that honors cancellation. The
// asynchronous counterpart of toolbox.Try.
type Try[T any] func(ctx context.Context) (T, error)

// Future is a handle on a pending Result. It is created started; Await
// blocks until the producer settles or the caller's context is done.
type Future[T any] struct {
	state *futureState[T]
}

type futureState[T any] struct {
	done chan struct{}
	res  toolbox.Result[T]
}

// Go starts fn in its own goroutine inside the fault boundary: returned
// errors and raised panics become a failed Result, never an escaping
// fault.
func Go[T any](ctx context.Context, fn Try[T]) Future[T] {
	return GoResult(ctx, func(ctx context.Context) toolbox.Result[T] {
		return toolbox.Try[T](func() (T, error) { return fn(ctx) }).Run()
	})
}

// GoResult starts a Result-producing computation. A panic inside fn is
// captured the same way Go captures it.
func GoResult[T any](ctx context.Context, fn func(ctx context.Context) toolbox.Result[T]) Future[T] {
	state := &futureState[T]{done: make(chan struct{})}
	go func() {
		defer close(state.done)
		defer func() {
			if r := recover(); r != nil {
				state.res = toolbox.FromError[T](recoveredError(r))
			}
		}()
		state.res = fn(ctx)
	}()
	return Future[T]{state: state}
}

func recoveredError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &toolbox.RecoveredPanic{Value: r}
}

// Resolve lifts an already settled Result into a Future.
func Resolve[T any](res toolbox.Result[T]) Future[T] {
	state := &futureState[T]{done: make(chan struct{}), res: res}
	close(state.done)
	return Future[T]{state: state}
}

// Await blocks until the future settles and returns its Result. When ctx
// is done first, a failure carrying ctx.Err as cause is returned; the
// producer keeps running and can still be awaited again.
func (f Future[T]) Await(ctx context.Context) toolbox.Result[T] {
	select {
	case <-f.state.done:
		return f.state.res
	case <-ctx.Done():
		return toolbox.FromError[T](ctx.Err())
	}
}

// IsSettled reports whether the producer has finished.
func (f Future[T]) IsSettled() bool {
	select {
	case <-f.state.done:
		return true
	default:
		return false
	}
}
