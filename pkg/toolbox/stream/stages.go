package stream

import (
	"context"

	"github.com/ZeidLab/toolbox-go/pkg/toolbox"
)

// BindStage lifts a Result-returning function into a Stage. Failed inputs
// pass through without invoking the function.
func BindStage[In, Out any](fn func(ctx context.Context, v In) toolbox.Result[Out]) Stage[In, Out] {
	return func(ctx context.Context, in toolbox.Result[In]) toolbox.Result[Out] {
		return toolbox.Bind(in, func(v In) toolbox.Result[Out] {
			return fn(ctx, v)
		})
	}
}

// MapStage lifts a pure transformation into a Stage.
func MapStage[In, Out any](fn func(ctx context.Context, v In) Out) Stage[In, Out] {
	return func(ctx context.Context, in toolbox.Result[In]) toolbox.Result[Out] {
		return toolbox.Map(in, func(v In) Out {
			return fn(ctx, v)
		})
	}
}

// TryStage lifts an error-returning function into a Stage, running it
// inside the toolbox.Try fault boundary.
func TryStage[In, Out any](fn func(ctx context.Context, v In) (Out, error)) Stage[In, Out] {
	return func(ctx context.Context, in toolbox.Result[In]) toolbox.Result[Out] {
		return toolbox.Bind(in, func(v In) toolbox.Result[Out] {
			return toolbox.Try[Out](func() (Out, error) { return fn(ctx, v) }).Run()
		})
	}
}

// EnsureStage lifts a predicate check into a Stage using the
// caller-supplied fault.
func EnsureStage[T any](pred func(ctx context.Context, v T) bool, fault toolbox.Error) Stage[T, T] {
	return func(ctx context.Context, in toolbox.Result[T]) toolbox.Result[T] {
		return in.Ensure(func(v T) bool { return pred(ctx, v) }, fault)
	}
}

// TapStage lifts a success side effect into a Stage.
func TapStage[T any](fn func(ctx context.Context, v T)) Stage[T, T] {
	return func(ctx context.Context, in toolbox.Result[T]) toolbox.Result[T] {
		return in.Tap(func(v T) { fn(ctx, v) })
	}
}
