package changestat

import "github.com/katalvlaran/ergmee/graph"

// Activity counts edges/arcs incident to a node carrying value 1 on a named
// binary attribute. On an undirected graph that is any edge touching a
// "true" node; inserting i-j contributes one count per true endpoint.
type Activity struct{ Attr string }

func (s Activity) Name() string  { return "Activity(" + s.Attr + ")" }
func (Activity) Kind() ParamKind { return KindBinaryAttr }
func (s Activity) Delta(g *graph.Graph, i, j int) float64 {
	delta := 0.0
	if v, ok := g.Binary(s.Attr, i); ok && v == 1 {
		delta++
	}
	if v, ok := g.Binary(s.Attr, j); ok && v == 1 {
		delta++
	}

	return delta
}

// Interaction counts edges whose two endpoints are BOTH true on a named
// binary attribute.
type Interaction struct{ Attr string }

func (s Interaction) Name() string  { return "Interaction(" + s.Attr + ")" }
func (Interaction) Kind() ParamKind { return KindBinaryAttr }
func (s Interaction) Delta(g *graph.Graph, i, j int) float64 {
	vi, oki := g.Binary(s.Attr, i)
	vj, okj := g.Binary(s.Attr, j)
	if oki && okj && vi == 1 && vj == 1 {
		return 1
	}

	return 0
}

// SenderBinary counts arcs whose SOURCE is true on a named binary attribute
// (directed graphs only).
type SenderBinary struct{ Attr string }

func (s SenderBinary) Name() string  { return "SenderBinary(" + s.Attr + ")" }
func (SenderBinary) Kind() ParamKind { return KindBinaryAttr }
func (s SenderBinary) Delta(g *graph.Graph, i, j int) float64 {
	if v, ok := g.Binary(s.Attr, i); ok && v == 1 {
		return 1
	}

	return 0
}

// ReceiverBinary counts arcs whose TARGET is true on a named binary
// attribute (directed graphs only).
type ReceiverBinary struct{ Attr string }

func (s ReceiverBinary) Name() string  { return "ReceiverBinary(" + s.Attr + ")" }
func (ReceiverBinary) Kind() ParamKind { return KindBinaryAttr }
func (s ReceiverBinary) Delta(g *graph.Graph, i, j int) float64 {
	if v, ok := g.Binary(s.Attr, j); ok && v == 1 {
		return 1
	}

	return 0
}
