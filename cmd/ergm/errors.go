package main

import (
	"errors"
	"io/fs"

	"github.com/katalvlaran/ergmee/config"
	"github.com/katalvlaran/ergmee/estimator"
	"github.com/katalvlaran/ergmee/harness"
	"github.com/katalvlaran/ergmee/netio"
)

// Exit codes, stable across releases per spec.md §7: scripts driving this
// binary across many ranks/configs key off these rather than parsing
// stderr.
const (
	exitOK          = 0
	exitConfigError = 1
	exitIOError     = 2
	exitNonFinite   = 3
)

// exitCodeFor classifies the first failing rank's error (if any) into one
// of the stable exit codes above. An unrecognised error kind is treated as
// a config error, the most conservative of the three non-zero codes.
func exitCodeFor(results []harness.RankResult) int {
	for _, r := range results {
		if r.Err == nil {
			continue
		}

		return classify(r.Err)
	}

	return exitOK
}

func classify(err error) int {
	switch {
	case errors.Is(err, estimator.ErrNonFinite):
		return exitNonFinite
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, netio.ErrMissingHeader),
		errors.Is(err, netio.ErrMalformedHeader), errors.Is(err, netio.ErrMalformedRow):
		return exitIOError
	case errors.Is(err, config.ErrUnknownKey), errors.Is(err, config.ErrMalformedLine),
		errors.Is(err, config.ErrBadValue), errors.Is(err, config.ErrMissingRequiredKey),
		errors.Is(err, config.ErrUnterminatedBlock):
		return exitConfigError
	default:
		return exitConfigError
	}
}
