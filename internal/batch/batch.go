// Package batch parses many independent files of the same family concurrently.
// It generalizes the worker-pool pattern used to extract archive entries in
// parallel to any parse function over a path, bounding concurrency instead of
// launching one goroutine per file.
package batch

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ParseAll runs parse over every path using at most workers concurrent
// goroutines and returns results in the same order as paths. Each goroutine
// operates on its own path only; parse is responsible for opening and
// closing whatever file it needs, so no reader is shared across goroutines.
//
// The first error returned by parse cancels the group's context derived from
// ctx, and every path whose parse has not started by then is skipped (a parse
// already running finishes, since parse takes no context). ParseAll then
// returns that error and a nil results slice.
func ParseAll[T any](ctx context.Context, paths []string, parse func(string) (T, error), workers int) ([]T, error) {
	if workers <= 0 {
		workers = 4
	}

	results := make([]T, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := parse(path)
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
