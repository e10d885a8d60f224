package async

import (
	"context"

	"github.com/ZeidLab/toolbox-go/pkg/toolbox"
)

// Bind chains a Future-returning function after f. The function is not
// invoked, and its work does not start, before f settles; a failed prior
// step short-circuits with the original error.
func Bind[In, Out any](ctx context.Context, f Future[In], fn func(ctx context.Context, v In) Future[Out]) Future[Out] {
	return GoResult(ctx, func(ctx context.Context) toolbox.Result[Out] {
		prior := f.Await(ctx)
		if prior.IsFailure() {
			return toolbox.FailureFrom[In, Out](prior)
		}
		return fn(ctx, prior.Value()).Await(ctx)
	})
}

// Map transforms the settled success value of f, propagating failure
// otherwise.
func Map[In, Out any](ctx context.Context, f Future[In], fn func(ctx context.Context, v In) Out) Future[Out] {
	return GoResult(ctx, func(ctx context.Context) toolbox.Result[Out] {
		prior := f.Await(ctx)
		if prior.IsFailure() {
			return toolbox.FailureFrom[In, Out](prior)
		}
		return toolbox.Success(fn(ctx, prior.Value()))
	})
}

// Match awaits f and eliminates its Result: exactly one of the two
// functions is applied.
func Match[In, Out any](ctx context.Context, f Future[In], onSuccess func(In) Out, onFailure func(toolbox.Error) Out) Out {
	return toolbox.Match(f.Await(ctx), onSuccess, onFailure)
}

// Ensure re-checks the settled success value against pred, converting it
// to a failure carrying the caller-supplied fault when the predicate does
// not hold.
func Ensure[T any](ctx context.Context, f Future[T], pred func(T) bool, fault toolbox.Error) Future[T] {
	return GoResult(ctx, func(ctx context.Context) toolbox.Result[T] {
		return f.Await(ctx).Ensure(pred, fault)
	})
}

// Tap invokes action on the settled success value and passes the Result
// through unchanged.
func Tap[T any](ctx context.Context, f Future[T], action func(ctx context.Context, v T)) Future[T] {
	return GoResult(ctx, func(ctx context.Context) toolbox.Result[T] {
		return f.Await(ctx).Tap(func(v T) { action(ctx, v) })
	})
}
