package changestat

import "github.com/katalvlaran/ergmee/graph"

// Match counts edges whose endpoints share the same value of a named
// categorical attribute ("nodematch" in the one-mode setting, distinct from
// the bipartite NodematchAlpha/Beta forms in bipartite.go).
type Match struct{ Attr string }

func (s Match) Name() string  { return "Match(" + s.Attr + ")" }
func (Match) Kind() ParamKind { return KindCategoricalAttr }
func (s Match) Delta(g *graph.Graph, i, j int) float64 {
	vi, oki := g.Categorical(s.Attr, i)
	vj, okj := g.Categorical(s.Attr, j)
	if oki && okj && vi == vj {
		return 1
	}

	return 0
}

// Mismatch counts edges whose endpoints carry different present values of a
// named categorical attribute ("nodemix" complement).
type Mismatch struct{ Attr string }

func (s Mismatch) Name() string  { return "Mismatch(" + s.Attr + ")" }
func (Mismatch) Kind() ParamKind { return KindCategoricalAttr }
func (s Mismatch) Delta(g *graph.Graph, i, j int) float64 {
	vi, oki := g.Categorical(s.Attr, i)
	vj, okj := g.Categorical(s.Attr, j)
	if oki && okj && vi != vj {
		return 1
	}

	return 0
}

// SenderCategorical counts arcs whose source carries a specific category
// value (directed graphs only).
type SenderCategorical struct {
	Attr  string
	Value int64
}

func (s SenderCategorical) Name() string  { return "SenderCategorical(" + s.Attr + ")" }
func (SenderCategorical) Kind() ParamKind { return KindCategoricalAttr }
func (s SenderCategorical) Delta(g *graph.Graph, i, j int) float64 {
	if v, ok := g.Categorical(s.Attr, i); ok && v == s.Value {
		return 1
	}

	return 0
}

// ReceiverCategorical counts arcs whose target carries a specific category
// value (directed graphs only).
type ReceiverCategorical struct {
	Attr  string
	Value int64
}

func (s ReceiverCategorical) Name() string  { return "ReceiverCategorical(" + s.Attr + ")" }
func (ReceiverCategorical) Kind() ParamKind { return KindCategoricalAttr }
func (s ReceiverCategorical) Delta(g *graph.Graph, i, j int) float64 {
	if v, ok := g.Categorical(s.Attr, j); ok && v == s.Value {
		return 1
	}

	return 0
}
