package harness_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ergmee/harness"
)

var errRankThree = errors.New("rank 3 deliberately fails")

func TestRunReportsOneResultPerRankInOrder(t *testing.T) {
	var completed int32
	results := harness.Run(context.Background(), 6, func(_ context.Context, rank int) error {
		atomic.AddInt32(&completed, 1)
		if rank == 3 {
			return errRankThree
		}

		return nil
	})

	require.Len(t, results, 6)
	require.Equal(t, int32(6), completed) // every rank ran despite rank 3's failure
	for idx, r := range results {
		require.Equal(t, idx, r.Rank)
		require.Equal(t, r.Rank == 3, r.Err != nil)
	}
	require.True(t, harness.AnyFailed(results))
}

func TestRunAllSucceed(t *testing.T) {
	results := harness.Run(context.Background(), 4, func(_ context.Context, _ int) error {
		return nil
	})

	require.False(t, harness.AnyFailed(results))
}

func TestRunRespectsContextForCooperatingWork(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := harness.Run(ctx, 3, func(ctx context.Context, _ int) error {
		return ctx.Err()
	})

	for _, r := range results {
		require.Error(t, r.Err)
	}
}
