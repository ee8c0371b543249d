package testutil

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// RunMany runs Check for every seed with at most parallel runs in flight.
// Each run owns its own list; nothing is shared between goroutines.
//
// progress, if non-nil, is called after each successful run. Calls are
// serialized. The first failing seed cancels the remaining runs and its
// error is returned together with the results collected so far, in seed
// order (zero Results for runs that did not complete).
func RunMany(ctx context.Context, seeds []int64, cfg Config, parallel int, progress func(Result)) ([]Result, error) {
	if parallel <= 0 {
		parallel = 1
	}

	results := make([]Result, len(seeds))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i, seed := range seeds {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := Check(seed, cfg)
			if err != nil {
				return err
			}
			results[i] = res
			if progress != nil {
				mu.Lock()
				progress(res)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}
