package stream

import (
	"context"
	"sync"

	"github.com/ZeidLab/toolbox-go/pkg/toolbox"
)

// Stage transforms one result into another. Failed inputs are expected to
// pass through untouched; the builders in this package guarantee that.
type Stage[In, Out any] func(ctx context.Context, in toolbox.Result[In]) toolbox.Result[Out]

// Emit feeds plain values into a channel of successful results. The
// channel closes when all values are sent or ctx is done.
func Emit[T any](ctx context.Context, values ...T) <-chan toolbox.Result[T] {
	out := make(chan toolbox.Result[T])

	go func() {
		defer close(out)
		for _, v := range values {
			select {
			case out <- toolbox.Success(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// EmitResults feeds already constructed results into a channel.
func EmitResults[T any](ctx context.Context, results ...toolbox.Result[T]) <-chan toolbox.Result[T] {
	out := make(chan toolbox.Result[T])

	go func() {
		defer close(out)
		for _, r := range results {
			select {
			case out <- r:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Run applies a same-typed stage over the input with the given number of
// worker goroutines. Output order is not guaranteed when workers > 1.
func Run[T any](ctx context.Context, in <-chan toolbox.Result[T], stage Stage[T, T], workers int) <-chan toolbox.Result[T] {
	return Pipe(ctx, in, stage, workers)
}

// Pipe applies a type-changing stage over the input with the given number
// of worker goroutines. The output channel closes once every worker has
// drained the input or ctx is done.
func Pipe[In, Out any](ctx context.Context, in <-chan toolbox.Result[In], stage Stage[In, Out], workers int) <-chan toolbox.Result[Out] {
	if workers < 1 {
		workers = 1
	}

	out := make(chan toolbox.Result[Out])
	wg := &sync.WaitGroup{}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go worker(ctx, in, out, stage, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func worker[In, Out any](ctx context.Context, in <-chan toolbox.Result[In], out chan<- toolbox.Result[Out],
	stage Stage[In, Out], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case r, ok := <-in:
			if !ok {
				return
			}

			select {
			case out <- stage(ctx, r):
			case <-ctx.Done():
				return
			}
		}
	}
}

// Finalize eliminates a channel of results into plain values; exactly one
// handler runs per element.
func Finalize[In, Out any](ctx context.Context, in <-chan toolbox.Result[In],
	onSuccess func(ctx context.Context, v In) Out,
	onFailure func(ctx context.Context, fault toolbox.Error) Out) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case r, ok := <-in:
				if !ok {
					return
				}

				v := toolbox.Match(r,
					func(v In) Out { return onSuccess(ctx, v) },
					func(fault toolbox.Error) Out { return onFailure(ctx, fault) })

				select {
				case out <- v:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

// Collect gathers every element of the channel into a slice, stopping
// early when ctx is done.
func Collect[T any](ctx context.Context, in <-chan T) []T {
	out := make([]T, 0)
	for {
		select {
		case v, ok := <-in:
			if !ok {
				return out
			}
			out = append(out, v)
		case <-ctx.Done():
			return out
		}
	}
}
