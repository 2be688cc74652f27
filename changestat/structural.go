package changestat

import "github.com/katalvlaran/ergmee/graph"

// EdgeCount is the total number of edges/arcs. Delta is always 1: any
// accepted toggle changes the edge count by exactly one, regardless of
// graph mode.
type EdgeCount struct{}

func (EdgeCount) Name() string { return "EdgeCount" }
func (EdgeCount) Kind() ParamKind { return KindStructural }
func (EdgeCount) Delta(g *graph.Graph, i, j int) float64 { return 1 }

// Mutual counts reciprocated dyads (both i->j and j->i present) on a
// directed graph. Inserting i->j turns the dyad reciprocated only if j->i
// was already present.
type Mutual struct{}

func (Mutual) Name() string  { return "Mutual" }
func (Mutual) Kind() ParamKind { return KindStructural }
func (Mutual) Delta(g *graph.Graph, i, j int) float64 {
	if g.IsEdge(j, i) {
		return 1
	}

	return 0
}

// Asymmetric counts dyads with exactly one arc present. Inserting i->j moves
// the (i,j) dyad from null to asymmetric (+1) if j->i is absent, or from
// asymmetric to mutual (-1) if j->i is already present.
type Asymmetric struct{}

func (Asymmetric) Name() string  { return "Asymmetric" }
func (Asymmetric) Kind() ParamKind { return KindStructural }
func (Asymmetric) Delta(g *graph.Graph, i, j int) float64 {
	if g.IsEdge(j, i) {
		return -1
	}

	return 1
}

// Triangles counts closed triangles in an undirected graph. Inserting edge
// i-j closes one triangle per existing common neighbour of i and j.
type Triangles struct{}

func (Triangles) Name() string  { return "Triangles" }
func (Triangles) Kind() ParamKind { return KindStructural }
func (Triangles) Delta(g *graph.Graph, i, j int) float64 {
	return float64(g.TwoPath(i, j))
}

// KStar counts the number of K-node stars, Σ_v C(degree(v), K), in an
// undirected graph. Pascal's identity gives the change on inserting edge i-j
// as C(d_i,K-1) + C(d_j,K-1) using the pre-toggle degrees.
type KStar struct{ K int }

func (s KStar) Name() string  { return "KStar" }
func (KStar) Kind() ParamKind { return KindStructural }
func (s KStar) Delta(g *graph.Graph, i, j int) float64 {
	return comb(g.Degree(i), s.K-1) + comb(g.Degree(j), s.K-1)
}

// OutKStar counts Σ_v C(outdegree(v), K) on a directed graph; only the arc's
// source degree changes.
type OutKStar struct{ K int }

func (OutKStar) Name() string  { return "OutKStar" }
func (OutKStar) Kind() ParamKind { return KindStructural }
func (s OutKStar) Delta(g *graph.Graph, i, j int) float64 {
	return comb(g.OutDegree(i), s.K-1)
}

// InKStar counts Σ_v C(indegree(v), K) on a directed graph; only the arc's
// target degree changes.
type InKStar struct{ K int }

func (InKStar) Name() string  { return "InKStar" }
func (InKStar) Kind() ParamKind { return KindStructural }
func (s InKStar) Delta(g *graph.Graph, i, j int) float64 {
	return comb(g.InDegree(j), s.K-1)
}

// KTwoPath counts Σ_{pairs} C(twopath(pair),K) over all node pairs in an
// undirected graph: a generalisation of the two-path count that, unlike
// KTriangle, is not restricted to existing edges. Inserting edge i-j raises
// twopath(i,k) for every neighbour k of j (k!=i) and twopath(j,k) for every
// neighbour k of i (k!=j); Pascal's identity folds each touched pair's
// contribution to C(tp,K-1).
type KTwoPath struct{ K int }

func (KTwoPath) Name() string  { return "KTwoPath" }
func (KTwoPath) Kind() ParamKind { return KindStructural }
func (s KTwoPath) Delta(g *graph.Graph, i, j int) float64 {
	total := 0.0
	for _, k := range g.Neighbours(j) {
		if k != i {
			total += comb(g.TwoPath(i, k), s.K-1)
		}
	}
	for _, k := range g.Neighbours(i) {
		if k != j {
			total += comb(g.TwoPath(j, k), s.K-1)
		}
	}

	return total
}
