package changestat

import (
	"math"

	"github.com/katalvlaran/ergmee/graph"
)

// Sum adds the two endpoints' values of a named continuous attribute for
// every edge/arc.
type Sum struct{ Attr string }

func (s Sum) Name() string  { return "Sum(" + s.Attr + ")" }
func (Sum) Kind() ParamKind { return KindContinuousAttr }
func (s Sum) Delta(g *graph.Graph, i, j int) float64 {
	vi, oki := g.Continuous(s.Attr, i)
	vj, okj := g.Continuous(s.Attr, j)
	if !oki || !okj {
		return 0
	}

	return vi + vj
}

// Diff adds |endpoint_i - endpoint_j| of a named continuous attribute for
// every edge/arc.
type Diff struct{ Attr string }

func (s Diff) Name() string  { return "Diff(" + s.Attr + ")" }
func (Diff) Kind() ParamKind { return KindContinuousAttr }
func (s Diff) Delta(g *graph.Graph, i, j int) float64 {
	vi, oki := g.Continuous(s.Attr, i)
	vj, okj := g.Continuous(s.Attr, j)
	if !oki || !okj {
		return 0
	}

	return math.Abs(vi - vj)
}

// SenderContinuous sums the source endpoint's continuous attribute value
// over all arcs (directed graphs only).
type SenderContinuous struct{ Attr string }

func (s SenderContinuous) Name() string  { return "SenderContinuous(" + s.Attr + ")" }
func (SenderContinuous) Kind() ParamKind { return KindContinuousAttr }
func (s SenderContinuous) Delta(g *graph.Graph, i, j int) float64 {
	if v, ok := g.Continuous(s.Attr, i); ok {
		return v
	}

	return 0
}

// ReceiverContinuous sums the target endpoint's continuous attribute value
// over all arcs (directed graphs only).
type ReceiverContinuous struct{ Attr string }

func (s ReceiverContinuous) Name() string  { return "ReceiverContinuous(" + s.Attr + ")" }
func (ReceiverContinuous) Kind() ParamKind { return KindContinuousAttr }
func (s ReceiverContinuous) Delta(g *graph.Graph, i, j int) float64 {
	if v, ok := g.Continuous(s.Attr, j); ok {
		return v
	}

	return 0
}
