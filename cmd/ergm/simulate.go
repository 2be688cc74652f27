package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ergmee/cmd/ergm/internal/runner"
	"github.com/katalvlaran/ergmee/config"
)

var simulateRanks int

var simulateCmd = &cobra.Command{
	Use:   "simulate <config-path>",
	Short: "Draw networks from a fixed theta via burn-in plus interval sampling",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runSimulate(args[0]))
	},
}

func init() {
	simulateCmd.Flags().IntVar(&simulateRanks, "ranks", 1, "independent simulation ranks to run concurrently")
}

func runSimulate(path string) int {
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
	if len(cfg.Theta) != len(cfg.Terms()) {
		rootLog.Error().Err(fmt.Errorf("theta has %d values, config declares %d terms", len(cfg.Theta), len(cfg.Terms()))).Msg("validating config")
		return exitConfigError
	}

	results := runner.Simulate(context.Background(), cfg, cfg.Theta, simulateRanks, rootLog)
	for _, r := range results {
		if r.Err != nil {
			rootLog.Error().Int("rank", r.Rank).Err(r.Err).Msg("rank failed")
		}
	}

	return exitCodeFor(results)
}
