package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ergmee/cmd/ergm/internal/runner"
	"github.com/katalvlaran/ergmee/config"
)

var estimateRanks int

var estimateCmd = &cobra.Command{
	Use:   "estimate <config-path>",
	Short: "Fit theta to an observed network via Algorithm S / Algorithm EE",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runEstimate(args[0]))
	},
}

func init() {
	estimateCmd.Flags().IntVar(&estimateRanks, "ranks", 1, "independent estimation ranks to run concurrently")
}

func runEstimate(path string) int {
	f, err := os.Open(path)
	if err != nil {
		rootLog.Error().Err(err).Str("path", path).Msg("opening config")
		return exitIOError
	}
	defer f.Close()

	cfg, err := config.Parse(f)
	if err != nil {
		rootLog.Error().Err(err).Msg("parsing config")
		return exitConfigError
	}
	if err := cfg.Validate(); err != nil {
		rootLog.Error().Err(err).Msg("validating config")
		return exitConfigError
	}

	results := runner.Estimate(context.Background(), cfg, estimateRanks, rootLog)
	for _, r := range results {
		if r.Err != nil {
			rootLog.Error().Int("rank", r.Rank).Err(r.Err).Msg("rank failed")
		}
	}

	return exitCodeFor(results)
}
