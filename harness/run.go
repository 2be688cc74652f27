package harness

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Work is one rank's unit of execution: construct its own graph, sampler,
// estimator (or simulator), and PRNG stream, then run to completion or
// ctx cancellation.
type Work func(ctx context.Context, rank int) error

// Run launches ranks goroutines, each invoking work(ctx, rank), and
// returns one RankResult per rank in rank order once all have finished.
//
// A plain errgroup.Group (its zero value, not WithContext) provides the
// goroutine bookkeeping, but every per-rank error is captured into its own
// results slot and the closure handed to errgroup always itself returns
// nil — so errgroup.Wait() never short-circuits or cancels a sibling on
// one rank's failure, matching spec.md §5's "no inter-rank communication"
// rule exactly rather than relying on errgroup's own (cancel-on-first-
// error) default behaviour.
func Run(ctx context.Context, ranks int, work Work) []RankResult {
	results := make([]RankResult, ranks)

	var g errgroup.Group
	for rank := 0; rank < ranks; rank++ {
		rank := rank
		g.Go(func() error {
			results[rank] = RankResult{Rank: rank, Err: work(ctx, rank)}

			return nil
		})
	}
	_ = g.Wait() // always nil: every rank's error is already captured above

	return results
}
