// Package runner turns a parsed config.Config into a running multi-rank
// estimation or simulation, wiring package harness across per-rank
// estimator.Estimator / simulate.Simulator instances.
package runner

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/ergmee/cmd/ergm/internal/wiring"
	"github.com/katalvlaran/ergmee/config"
	"github.com/katalvlaran/ergmee/estimator"
	"github.com/katalvlaran/ergmee/harness"
	"github.com/katalvlaran/ergmee/netio"
	"github.com/katalvlaran/ergmee/rng"
	"github.com/katalvlaran/ergmee/simulate"
)

// traceFile opens this rank's trace file, named per spec.md §6:
// "<kind>_<prefix>_<rank>.txt". An empty prefix disables tracing.
func traceFile(prefix, kind string, rank int) (*os.File, error) {
	if prefix == "" {
		return nil, nil
	}
	path := fmt.Sprintf("%s_%s_%d.txt", kind, prefix, rank)
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}

	return f, nil
}

func closeAll(files ...*os.File) {
	for _, f := range files {
		if f != nil {
			_ = f.Close()
		}
	}
}

// Estimate validates cfg once up front, then gives every rank its own
// freshly-built graph, term set, and sampler (package estimator's single-
// owner contract forbids two goroutines sharing one graph.Graph) and runs
// them under package harness, each with its own PRNG stream and trace
// files.
func Estimate(ctx context.Context, cfg *config.Config, ranks int, log zerolog.Logger) []harness.RankResult {
	probe, err := wiring.Load(cfg)
	if err != nil {
		return []harness.RankResult{{Rank: 0, Err: err}}
	}

	ecfg := estimator.Config{
		SSteps:             cfg.SSteps,
		EESteps:            cfg.EESteps,
		EEInnerSteps:       cfg.EEInnerSteps,
		SamplerSteps:       cfg.SamplerSteps,
		ACA_S:              cfg.ACA_S,
		ACA_EE:             cfg.ACA_EE,
		CompC:              cfg.CompC,
		UseBorisenkoUpdate: cfg.UseBorisenkoUpdate,
	}
	theta0 := make([]float64, len(probe.Stats))

	return harness.Run(ctx, ranks, func(ctx context.Context, rank int) error {
		built, err := wiring.Load(cfg)
		if err != nil {
			return err
		}

		thetaFile, err := traceFile(cfg.TraceFilePrefix, "theta", rank)
		if err != nil {
			return err
		}
		dzAFile, err := traceFile(cfg.TraceFilePrefix, "dzA", rank)
		if err != nil {
			closeAll(thetaFile)
			return err
		}
		defer closeAll(thetaFile, dzAFile)

		est := estimator.New(built.Graph, built.Stats, built.Sampler, rng.NewFromRank(rank), theta0, ecfg,
			log.With().Int("rank", rank).Logger(), thetaFile, dzAFile)

		if err := est.Run(ctx); err != nil {
			return err
		}

		log.Info().Int("rank", rank).Floats64("theta", est.Theta()).Msg("estimation complete")

		return nil
	})
}

// Simulate mirrors Estimate: each rank owns its freshly-built graph and
// sampler, draws from the fixed theta supplied by a prior estimation run,
// and writes its snapshots through a rank-prefixed netio.PajekWriter plus
// a cumulative-statistics trace file.
func Simulate(ctx context.Context, cfg *config.Config, theta []float64, ranks int, log zerolog.Logger) []harness.RankResult {
	if _, err := wiring.Load(cfg); err != nil {
		return []harness.RankResult{{Rank: 0, Err: err}}
	}

	scfg := simulate.Config{BurnIn: cfg.BurnIn, SampleSize: cfg.SampleSize, Interval: cfg.Interval}

	return harness.Run(ctx, ranks, func(ctx context.Context, rank int) error {
		built, err := wiring.Load(cfg)
		if err != nil {
			return err
		}

		statsFile, err := traceFile(cfg.TraceFilePrefix, "stats", rank)
		if err != nil {
			return err
		}
		defer closeAll(statsFile)

		var netOut simulate.NetworkWriter
		if cfg.SimNetFilePrefix != "" {
			netOut = netio.PajekWriter{Dir: ".", Prefix: fmt.Sprintf("%s_%d", cfg.SimNetFilePrefix, rank)}
		}

		sim := simulate.New(built.Graph, built.Stats, built.Sampler, rng.NewFromRank(rank), theta, built.ObsStats,
			scfg, log.With().Int("rank", rank).Logger(), netOut, statsFile)

		return sim.Run(ctx)
	})
}
