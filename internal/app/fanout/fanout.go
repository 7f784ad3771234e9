// Package fanout runs per-item work with bounded concurrency while keeping
// results in input order.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Map calls fn for each item, with at most limit calls in flight, and
// returns the results in input order. fn receives the item's index.
//
// The first error cancels the context seen by the remaining calls, skips
// items that have not started, and is the only error returned. A limit
// below 1 is treated as 1, which processes items one at a time in order.
func Map[T, R any](ctx context.Context, limit int, items []T, fn func(context.Context, int, T) (R, error)) ([]R, error) {
	out := make([]R, len(items))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(limit, 1))
	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := fn(ctx, i, item)
			if err != nil {
				return err
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
