package pipe

import (
	"context"

	"github.com/ZeidLab/toolbox-go/pkg/toolbox"
)

// Chain wraps a toolbox.Result with context to enable fluent chaining.
type Chain[T any] struct {
	ctx context.Context
	res toolbox.Result[T]
}

// Start creates a new chain from a toolbox.Result.
func Start[T any](ctx context.Context, res toolbox.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: res}
}

// FromValue creates a new chain from a successful value.
func FromValue[T any](ctx context.Context, value T) Chain[T] {
	return Start(ctx, toolbox.Success(value))
}

// Result returns the underlying toolbox.Result.
func (c Chain[T]) Result() toolbox.Result[T] {
	return c.res
}

// Then composes a function that already returns a toolbox.Result. A
// failed chain short-circuits without invoking it.
func (c Chain[T]) Then(onSuccess func(ctx context.Context, v T) toolbox.Result[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Value())}
}

// ThenTry composes a function that returns (T, error), running it inside
// the toolbox.Try fault boundary.
func (c Chain[T]) ThenTry(try func(ctx context.Context, v T) (T, error)) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	res := toolbox.Try[T](func() (T, error) {
		return try(c.ctx, c.res.Value())
	}).Run()
	return Chain[T]{ctx: c.ctx, res: res}
}

// MapValue transforms the successful value to a new value of the same
// type.
func (c Chain[T]) MapValue(onSuccess func(ctx context.Context, v T) T) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: toolbox.Success(onSuccess(c.ctx, c.res.Value()))}
}

// Ensure converts the chain to a failure carrying fault when the
// predicate does not hold for the successful value.
func (c Chain[T]) Ensure(pred func(ctx context.Context, v T) bool, fault toolbox.Error) Chain[T] {
	res := c.res.Ensure(func(v T) bool { return pred(c.ctx, v) }, fault)
	return Chain[T]{ctx: c.ctx, res: res}
}

// Tap triggers a side effect on success without changing the result.
func (c Chain[T]) Tap(onSuccess func(ctx context.Context, v T)) Chain[T] {
	c.res.Tap(func(v T) { onSuccess(c.ctx, v) })
	return c
}

// TapFailure triggers a side effect on failure without changing the
// result.
func (c Chain[T]) TapFailure(onFailure func(ctx context.Context, fault toolbox.Error)) Chain[T] {
	c.res.TapFailure(func(fault toolbox.Error) { onFailure(c.ctx, fault) })
	return c
}

// Then chains a function that switches the chain to a new value type.
func Then[In, Out any](c Chain[In], onSuccess func(ctx context.Context, v In) toolbox.Result[Out]) Chain[Out] {
	return Chain[Out]{
		ctx: c.ctx,
		res: toolbox.Bind(c.res, func(v In) toolbox.Result[Out] {
			return onSuccess(c.ctx, v)
		}),
	}
}

// MapTo chains a pure transformation to a new value type.
func MapTo[In, Out any](c Chain[In], onSuccess func(ctx context.Context, v In) Out) Chain[Out] {
	return Chain[Out]{
		ctx: c.ctx,
		res: toolbox.Map(c.res, func(v In) Out {
			return onSuccess(c.ctx, v)
		}),
	}
}

// Finally collapses the chain to a final value; exactly one handler runs.
func Finally[In, Out any](c Chain[In],
	onSuccess func(ctx context.Context, v In) Out,
	onFailure func(ctx context.Context, fault toolbox.Error) Out) Out {

	return toolbox.Match(c.res,
		func(v In) Out { return onSuccess(c.ctx, v) },
		func(fault toolbox.Error) Out { return onFailure(c.ctx, fault) })
}
