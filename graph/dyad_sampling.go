package graph

// Intner is the minimal PRNG surface the dyad-sampling helpers need: a
// bounded uniform draw over [0,n). rng.Source satisfies this without graph
// importing the rng package, keeping the dependency direction one-way
// (changestat/sampler depend on graph, not the reverse; graph and rng do
// not import each other).
type Intner interface {
	Intn(n int) int
}

// NumDyads returns the number of distinct possible edges/arcs this graph's
// mode admits: n(n-1)/2 undirected, n(n-1) directed, nA*nB bipartite.
func (g *Graph) NumDyads() int {
	switch {
	case g.bipartite:
		return g.nA * (g.n - g.nA)
	case g.directed:
		return g.n * (g.n - 1)
	default:
		return g.n * (g.n - 1) / 2
	}
}

// Edges returns every current edge/arc as an (i,j) pair, in the order of
// the internal edge list RandomEdge draws from (insertion order until a
// removal moves the last edge into the removed one's slot). The returned slice is
// owned by Graph and must not be mutated by callers; it exists for
// read-only consumers such as package netio's Pajek writer.
func (g *Graph) Edges() [][2]int {
	return g.edgeList
}

// RandomEdge returns a uniformly random existing edge/arc in O(1), or
// ok=false if the graph has none.
func (g *Graph) RandomEdge(rng Intner) (i, j int, ok bool) {
	if len(g.edgeList) == 0 {
		return 0, 0, false
	}
	e := g.edgeList[rng.Intn(len(g.edgeList))]

	return e[0], e[1], true
}

// RandomNonEdge returns a uniformly random dyad that is not currently an
// edge/arc, via rejection sampling over RandomDyad, or ok=false if every
// dyad this graph's mode admits is already present (the graph is complete).
// Used by the IFD sampler's compound edge-removal/non-edge-insertion swap.
func (g *Graph) RandomNonEdge(rng Intner) (i, j int, ok bool) {
	if g.numEdges >= g.NumDyads() {
		return 0, 0, false
	}
	for {
		i, j = g.RandomDyad(rng)
		if !g.IsEdge(i, j) {
			return i, j, true
		}
	}
}

// RandomDyad returns a uniformly random valid dyad for this graph's mode —
// any i!=j pair respecting the directed/bipartite partition constraint,
// without regard to whether an edge currently exists there. Used by the
// Basic sampler (every proposal) and by TNT's "non-tie" proposal branch.
func (g *Graph) RandomDyad(rng Intner) (i, j int) {
	switch {
	case g.bipartite:
		nB := g.n - g.nA
		a := rng.Intn(g.nA)
		b := g.nA + rng.Intn(nB)

		return a, b
	case g.directed:
		i = rng.Intn(g.n)
		j = rng.Intn(g.n - 1)
		if j >= i {
			j++
		}

		return i, j
	default:
		i = rng.Intn(g.n)
		j = rng.Intn(g.n - 1)
		if j >= i {
			j++
		}

		return i, j
	}
}
