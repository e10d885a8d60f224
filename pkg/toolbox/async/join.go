package async

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ZeidLab/toolbox-go/pkg/toolbox"
)

// Join2 merges two pending results. Both inputs are already running when
// the join is created (fan-out happens at Go time); the join waits for
// all of them, then selects the first failure by position, not by which
// settled first. A fast-failing second input does not cancel the first.
func Join2[A, B, R any](ctx context.Context, fa Future[A], fb Future[B], fn func(A, B) toolbox.Result[R]) Future[R] {
	return GoResult(ctx, func(ctx context.Context) toolbox.Result[R] {
		ra := fa.Await(ctx)
		rb := fb.Await(ctx)
		return toolbox.Join2(ra, rb, fn)
	})
}

// Join3 merges three pending results; see Join2.
func Join3[A, B, C, R any](ctx context.Context, fa Future[A], fb Future[B], fc Future[C], fn func(A, B, C) toolbox.Result[R]) Future[R] {
	return GoResult(ctx, func(ctx context.Context) toolbox.Result[R] {
		ra := fa.Await(ctx)
		rb := fb.Await(ctx)
		rc := fc.Await(ctx)
		return toolbox.Join3(ra, rb, rc, fn)
	})
}

// AwaitAll waits for every future concurrently and collects the outcomes
// in input order. Workers always report nil to the group so a failed
// element never cancels its siblings: wait for all, then report.
func AwaitAll[T any](ctx context.Context, futures ...Future[T]) toolbox.ResultList[T] {
	results := make([]toolbox.Result[T], len(futures))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, f := range futures {
		i, f := i, f
		group.Go(func() error {
			results[i] = f.Await(groupCtx)
			return nil
		})
	}
	_ = group.Wait()

	return toolbox.NewResultList(results)
}

// JoinAll merges any number of same-typed pending results, fanning in via
// AwaitAll and selecting the first failure by position.
func JoinAll[T, R any](ctx context.Context, futures []Future[T], fn func([]T) toolbox.Result[R]) Future[R] {
	return GoResult(ctx, func(ctx context.Context) toolbox.Result[R] {
		list := AwaitAll(ctx, futures...)
		return toolbox.JoinAll(list.Results(), fn)
	})
}
