package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ergmee/config"
)

const sample = `
# comment line, ignored
isDirected = true
numNodes = 100
numArcs = 250
useIFDsampler = true
EEsteps = 500
ACA_EE = 0.1
structParams = {
  Edges,
  Mutual
}
attrParams = { Activity(sex), Match(group) }
`

func TestParseSampleConfig(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.True(t, cfg.IsDirected)
	require.Equal(t, 100, cfg.NumNodes)
	require.Equal(t, 250, cfg.NumArcs)
	require.True(t, cfg.UseIFDSampler)
	require.Equal(t, 500, cfg.EESteps)
	require.InDelta(t, 0.1, cfg.ACA_EE, 1e-12)
	require.Equal(t, []string{"Edges", "Mutual"}, cfg.StructParams)
	require.Equal(t, []string{"Activity(sex)", "Match(group)"}, cfg.AttrParams)
	require.Equal(t, []string{"Edges", "Mutual", "Activity(sex)", "Match(group)"}, cfg.Terms())
}

func TestParseUnknownKeyErrors(t *testing.T) {
	_, err := config.Parse(strings.NewReader("bogusKey = 1\n"))
	require.ErrorIs(t, err, config.ErrUnknownKey)
}

func TestParseBadValueErrors(t *testing.T) {
	_, err := config.Parse(strings.NewReader("numNodes = notanumber\n"))
	require.ErrorIs(t, err, config.ErrBadValue)
}

func TestParseUnterminatedBlockErrors(t *testing.T) {
	_, err := config.Parse(strings.NewReader("structParams = {\nEdges\n"))
	require.ErrorIs(t, err, config.ErrUnterminatedBlock)
}

func TestValidateRequiresNumArcsUnderIFD(t *testing.T) {
	cfg := &config.Config{NumNodes: 10, UseIFDSampler: true, StructParams: []string{"Edges"}}
	err := cfg.Validate()
	require.ErrorIs(t, err, config.ErrMissingRequiredKey)
}

func TestValidatePassesWithCompleteConfig(t *testing.T) {
	cfg := &config.Config{NumNodes: 10, StructParams: []string{"Edges"}}
	require.NoError(t, cfg.Validate())
}

func TestInlineCommentsAreStripped(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader("numNodes = 10 # trailing comment\n"))
	require.NoError(t, err)
	require.Equal(t, 10, cfg.NumNodes)
}

func TestParseThetaBlock(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader("theta = { 0.5, -1.25, 2 }\n"))
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, -1.25, 2}, cfg.Theta)
}

func TestParseThetaBlockBadValueErrors(t *testing.T) {
	_, err := config.Parse(strings.NewReader("theta = { notafloat }\n"))
	require.ErrorIs(t, err, config.ErrBadValue)
}

func TestParseDyadCovarKeys(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader("dyadCovarFile = dist.net\ndyadCovarName = Distance\n"))
	require.NoError(t, err)
	require.Equal(t, "dist.net", cfg.DyadCovarFile)
	require.Equal(t, "Distance", cfg.DyadCovarName)
}
