package main

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ergmee/config"
	"github.com/katalvlaran/ergmee/estimator"
	"github.com/katalvlaran/ergmee/harness"
	"github.com/katalvlaran/ergmee/netio"
)

func TestExitCodeForNonFinite(t *testing.T) {
	results := []harness.RankResult{{Rank: 0, Err: estimator.ErrNonFinite}}
	require.Equal(t, exitNonFinite, exitCodeFor(results))
}

func TestExitCodeForIOErrors(t *testing.T) {
	for _, err := range []error{fs.ErrNotExist, netio.ErrMissingHeader, netio.ErrMalformedRow} {
		results := []harness.RankResult{{Rank: 0, Err: err}}
		require.Equal(t, exitIOError, exitCodeFor(results))
	}
}

func TestExitCodeForConfigErrors(t *testing.T) {
	for _, err := range []error{config.ErrUnknownKey, config.ErrMissingRequiredKey} {
		results := []harness.RankResult{{Rank: 0, Err: err}}
		require.Equal(t, exitConfigError, exitCodeFor(results))
	}
}

func TestExitCodeForUnrecognisedErrorDefaultsToConfig(t *testing.T) {
	results := []harness.RankResult{{Rank: 0, Err: errors.New("something else")}}
	require.Equal(t, exitConfigError, exitCodeFor(results))
}

func TestExitCodeForAllSuccessIsOK(t *testing.T) {
	results := []harness.RankResult{{Rank: 0}, {Rank: 1}}
	require.Equal(t, exitOK, exitCodeFor(results))
}
