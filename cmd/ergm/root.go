package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	quiet   bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ergm",
	Short: "Fit and simulate exponential random graph models",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		level := zerolog.InfoLevel
		switch {
		case quiet:
			level = zerolog.ErrorLevel
		case verbose:
			level = zerolog.DebugLevel
		}
		rootLog = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
	},
}

// rootLog is the base logger every subcommand specialises per-rank via
// .With(). Set in PersistentPreRun once --quiet/--verbose are parsed.
var rootLog = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func init() {
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "log errors only")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log debug detail, including every outer estimator step")

	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(simulateCmd)
}
