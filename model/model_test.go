package model_test

import (
	"testing"

	"github.com/katalvlaran/ergmee/changestat"
	"github.com/katalvlaran/ergmee/graph"
	"github.com/katalvlaran/ergmee/model"
	"github.com/stretchr/testify/require"
)

func TestBuildBareTerm(t *testing.T) {
	r := model.NewRegistry()
	g := graph.New(4)

	stat, err := r.Build(g, "EdgeCount")
	require.NoError(t, err)
	require.Equal(t, "EdgeCount", stat.Name())
}

func TestBuildParameterisedTerm(t *testing.T) {
	r := model.NewRegistry()
	g := graph.New(4)

	stat, err := r.Build(g, "AltKTriangles(2.0)")
	require.NoError(t, err)
	alt, ok := stat.(changestat.AltKTriangles)
	require.True(t, ok)
	require.Equal(t, 2.0, alt.Lambda)
}

func TestBuildUnknownTermFails(t *testing.T) {
	r := model.NewRegistry()
	g := graph.New(4)

	_, err := r.Build(g, "NotARealTerm")
	require.ErrorIs(t, err, model.ErrUnknownTerm)
}

func TestBuildAttributeTermRequiresAttribute(t *testing.T) {
	r := model.NewRegistry()
	g := graph.New(4)

	_, err := r.Build(g, "Activity(missing)")
	require.ErrorIs(t, err, model.ErrUnknownAttribute)

	g.SetBinary("missing", []int8{1, 0, 1, 0})
	stat, err := r.Build(g, "Activity(missing)")
	require.NoError(t, err)
	require.Equal(t, "Activity(missing)", stat.Name())
}

func TestBuildAllPreservesOrder(t *testing.T) {
	r := model.NewRegistry()
	g := graph.New(4)

	stats, err := r.BuildAll(g, []string{"EdgeCount", "Triangles", "KStar(2)"})
	require.NoError(t, err)
	require.Len(t, stats, 3)
	require.Equal(t, "EdgeCount", stats[0].Name())
	require.Equal(t, "Triangles", stats[1].Name())
}

func TestBuildNodematchBetaParsesExponent(t *testing.T) {
	r := model.NewRegistry()
	g := graph.New(6, graph.WithBipartite(4))
	g.SetCategorical("kind", []int64{1, 1, 2, 1, 0, 0})

	stat, err := r.Build(g, "NodematchBeta(kind, 1.5)")
	require.NoError(t, err)
	beta, ok := stat.(changestat.NodematchBeta)
	require.True(t, ok)
	require.Equal(t, "kind", beta.Attr)
	require.Equal(t, 1.5, beta.Beta)
}

func TestBuildNodematchAlphaParsesExponent(t *testing.T) {
	r := model.NewRegistry()
	g := graph.New(6, graph.WithBipartite(4))
	g.SetCategorical("kind", []int64{1, 1, 2, 1, 0, 0})

	stat, err := r.Build(g, "NodematchAlpha(kind, 2.0)")
	require.NoError(t, err)
	alpha, ok := stat.(changestat.NodematchAlpha)
	require.True(t, ok)
	require.Equal(t, "kind", alpha.Attr)
	require.Equal(t, 2.0, alpha.Alpha)
}

func TestBadArgCountFails(t *testing.T) {
	r := model.NewRegistry()
	g := graph.New(4)

	_, err := r.Build(g, "KStar()")
	require.ErrorIs(t, err, model.ErrBadArgs)

	_, err = r.Build(g, "KStar(2,3)")
	require.ErrorIs(t, err, model.ErrBadArgs)
}

func TestMalformedTermFails(t *testing.T) {
	r := model.NewRegistry()
	g := graph.New(4)

	_, err := r.Build(g, "AltKTriangles(2.0")
	require.ErrorIs(t, err, model.ErrMalformedTerm)
}
