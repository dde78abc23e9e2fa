package aoc

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Parallel calls f for every element of in, running at most limit calls at
// once (no limit if limit <= 0). The outputs are in the order of in. The
// first error cancels the context passed to the remaining calls and is
// returned.
func Parallel[I, O any](ctx context.Context, limit int, in []I, f func(context.Context, I) (O, error)) ([]O, error) {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	out := make([]O, len(in))
	for i, v := range in {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			o, err := f(ctx, v)
			if err != nil {
				return err
			}
			out[i] = o
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}

// ParallelSum is Parallel followed by summing the outputs.
func ParallelSum[I any, N Number](ctx context.Context, limit int, in []I, f func(context.Context, I) (N, error)) (N, error) {
	out, err := Parallel(ctx, limit, in, f)
	if err != nil {
		return 0, err
	}
	return Fold(out, func(acc, v N) N { return acc + v }, 0), nil
}
