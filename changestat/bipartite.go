package changestat

import (
	"math"

	"github.com/katalvlaran/ergmee/graph"
)

// pow0 is base^exp with the spec.md §4.2 convention pow0(0,0) = 0 (rather
// than math.Pow's 1), so an unmatched pair/edge with a zero-valued exponent
// contributes nothing instead of padding every term by one.
func pow0(base, exp float64) float64 {
	if base == 0 && exp == 0 {
		return 0
	}

	return math.Pow(base, exp)
}

// BipartiteExactlyOneNeighbourA counts A-side nodes with exactly one
// B-neighbour (the structural zero/small-degree indicator used in spec.md
// §8 seed scenario 2). Inserting edge a-b (a in A) moves a from degree d to
// d+1: the statistic loses a's contribution if d was exactly 1, gains it if
// d+1 is exactly 1 (i.e. d was 0).
type BipartiteExactlyOneNeighbourA struct{}

func (BipartiteExactlyOneNeighbourA) Name() string  { return "BipartiteExactlyOneNeighbourA" }
func (BipartiteExactlyOneNeighbourA) Kind() ParamKind { return KindStructural }
func (BipartiteExactlyOneNeighbourA) Delta(g *graph.Graph, i, j int) float64 {
	a := i
	if !g.InA(a) {
		a = j
	}
	d := g.Degree(a)

	delta := 0.0
	if d == 1 {
		delta -= 1
	}
	if d+1 == 1 {
		delta += 1
	}

	return delta
}

// NodematchAlpha is the bipartite nodematch term in its "alpha" form
// (Bomiriya et al. 2023, after spec.md §4.2): for every *other* A-node that
// shares the proposed edge's A-endpoint's categorical attribute value, it
// sums c^Alpha over the count c of B-neighbours the two A-nodes have in
// common. Inserting edge a-b only changes c for matching A-nodes that are
// themselves already neighbours of b (b becomes a newly shared B-neighbour
// for exactly those pairs) — mirrors the iteration graph.updateTwoPathsBipartite
// already performs to maintain twoPathA incrementally. pow0(0,0)=0 by
// convention, so an unmatched or zero-overlap pair contributes nothing.
type NodematchAlpha struct {
	Attr  string
	Alpha float64
}

func (s NodematchAlpha) Name() string  { return "NodematchAlpha(" + s.Attr + ")" }
func (NodematchAlpha) Kind() ParamKind { return KindCategoricalAttr }
func (s NodematchAlpha) Delta(g *graph.Graph, i, j int) float64 {
	a, b := i, j
	if !g.InA(a) {
		a, b = j, i
	}
	va, oka := g.Categorical(s.Attr, a)
	if !oka {
		return 0
	}

	delta := 0.0
	for _, aPrime := range g.Neighbours(b) {
		if aPrime == a {
			continue
		}
		vp, okp := g.Categorical(s.Attr, aPrime)
		if !okp || vp != va {
			continue
		}
		c := float64(g.TwoPath(a, aPrime))
		delta += pow0(c+1, s.Alpha) - pow0(c, s.Alpha)
	}

	return delta
}

// NodematchBeta is the "beta" form of bipartite nodematch (Bomiriya et al.
// 2023, after spec.md §4.2): summed over A-B edges, u^Beta where u is the
// count of the edge's A-endpoint's "matching co-neighbours" — other
// A-neighbours of the same B-node sharing its categorical attribute value.
// Inserting edge a-b adds one new edge (contributing matched^Beta, matched
// being a's count of attribute-matching A-neighbours of b) and increments
// every one of those matching neighbours' own edge-to-b term by one
// (a itself becomes their new matching co-neighbour). pow0(0,0)=0 by
// convention.
type NodematchBeta struct {
	Attr string
	Beta float64
}

func (s NodematchBeta) Name() string  { return "NodematchBeta(" + s.Attr + ")" }
func (NodematchBeta) Kind() ParamKind { return KindCategoricalAttr }
func (s NodematchBeta) Delta(g *graph.Graph, i, j int) float64 {
	a, b := i, j
	if !g.InA(a) {
		a, b = j, i
	}
	va, oka := g.Categorical(s.Attr, a)
	if !oka {
		return 0
	}

	matched := 0
	delta := 0.0
	for _, aPrime := range g.Neighbours(b) {
		if aPrime == a {
			continue
		}
		vp, okp := g.Categorical(s.Attr, aPrime)
		if !okp || vp != va {
			continue
		}
		matched++
		u := matchingCoNeighbours(g, s.Attr, vp, b, aPrime)
		delta += pow0(float64(u+1), s.Beta) - pow0(float64(u), s.Beta)
	}
	delta += pow0(float64(matched), s.Beta)

	return delta
}

// matchingCoNeighbours counts b's A-neighbours (excluding exclude) whose
// categorical attribute equals value.
func matchingCoNeighbours(g *graph.Graph, attr string, value int64, b, exclude int) int {
	count := 0
	for _, k := range g.Neighbours(b) {
		if k == exclude {
			continue
		}
		if v, ok := g.Categorical(attr, k); ok && v == value {
			count++
		}
	}

	return count
}
