package changestat

import "github.com/katalvlaran/ergmee/graph"

// AltKStars is the alternating k-star statistic with decay parameter
// Lambda: Σ_v [1 - (-1/Lambda)^degree(v)]. The per-node weight saturates as
// degree grows, giving large graphs a single bounded structural parameter in
// place of an unbounded family of raw k-star counts (Hunter & Handcock's
// alternating-statistic construction). Delta uses the pre-toggle degrees of
// the two endpoints only.
type AltKStars struct{ Lambda float64 }

func (s AltKStars) Name() string  { return "AltKStars" }
func (AltKStars) Kind() ParamKind { return KindStructural }
func (s AltKStars) Delta(g *graph.Graph, i, j int) float64 {
	di, dj := g.Degree(i), g.Degree(j)

	return (altWeight(s.Lambda, di+1) - altWeight(s.Lambda, di)) +
		(altWeight(s.Lambda, dj+1) - altWeight(s.Lambda, dj))
}

// AltOutStars is AltKStars restricted to out-degree on a directed graph.
type AltOutStars struct{ Lambda float64 }

func (s AltOutStars) Name() string  { return "AltOutStars" }
func (AltOutStars) Kind() ParamKind { return KindStructural }
func (s AltOutStars) Delta(g *graph.Graph, i, j int) float64 {
	d := g.OutDegree(i)

	return altWeight(s.Lambda, d+1) - altWeight(s.Lambda, d)
}

// AltInStars is AltKStars restricted to in-degree on a directed graph.
type AltInStars struct{ Lambda float64 }

func (s AltInStars) Name() string  { return "AltInStars" }
func (AltInStars) Kind() ParamKind { return KindStructural }
func (s AltInStars) Delta(g *graph.Graph, i, j int) float64 {
	d := g.InDegree(j)

	return altWeight(s.Lambda, d+1) - altWeight(s.Lambda, d)
}

// AltKTriangles is the alternating k-triangle statistic: Σ over existing
// edges (a,b) of [1 - (-1/Lambda)^twopath(a,b)]. Inserting edge i-j
// contributes three kinds of change:
//
//  1. The new edge (i,j) itself enters the sum with its pre-toggle two-path
//     count (the number of common neighbours i and j already share).
//  2. Every existing edge (i,k) where k is also a neighbour of j gains one
//     shared partner (the new triangle i-j-k), shifting its weight from
//     S(tp) to S(tp+1).
//  3. Symmetrically for every existing edge (j,k) where k is also a
//     neighbour of i.
//
// Cases 2 and 3 range over exactly the common neighbours of i and j.
type AltKTriangles struct{ Lambda float64 }

func (s AltKTriangles) Name() string  { return "AltKTriangles" }
func (AltKTriangles) Kind() ParamKind { return KindStructural }
func (s AltKTriangles) Delta(g *graph.Graph, i, j int) float64 {
	delta := altWeight(s.Lambda, g.TwoPath(i, j))
	for _, k := range commonNeighbours(g, i, j) {
		tpIK, tpJK := g.TwoPath(i, k), g.TwoPath(j, k)
		delta += (altWeight(s.Lambda, tpIK+1) - altWeight(s.Lambda, tpIK))
		delta += (altWeight(s.Lambda, tpJK+1) - altWeight(s.Lambda, tpJK))
	}

	return delta
}

// AltKTwoPaths is the alternating two-path statistic: Σ over ALL node pairs
// (not just existing edges) of [1 - (-1/Lambda)^twopath(pair)]. Inserting
// edge i-j raises twopath(i,k) for every neighbour k of j (k!=i) and
// twopath(j,k) for every neighbour k of i (k!=j); the pair (i,j) itself is
// unaffected since a new edge does not change i and j's shared-neighbour
// count with each other.
type AltKTwoPaths struct{ Lambda float64 }

func (s AltKTwoPaths) Name() string  { return "AltKTwoPaths" }
func (AltKTwoPaths) Kind() ParamKind { return KindStructural }
func (s AltKTwoPaths) Delta(g *graph.Graph, i, j int) float64 {
	delta := 0.0
	for _, k := range g.Neighbours(j) {
		if k != i {
			tp := g.TwoPath(i, k)
			delta += altWeight(s.Lambda, tp+1) - altWeight(s.Lambda, tp)
		}
	}
	for _, k := range g.Neighbours(i) {
		if k != j {
			tp := g.TwoPath(j, k)
			delta += altWeight(s.Lambda, tp+1) - altWeight(s.Lambda, tp)
		}
	}

	return delta
}
