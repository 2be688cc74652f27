package graph

// IsEdge reports whether an edge/arc i->j exists. For undirected graphs this
// is symmetric: IsEdge(i,j) == IsEdge(j,i). Complexity: O(1) average.
func (g *Graph) IsEdge(i, j int) bool {
	if g.directed {
		_, ok := g.edgeSet[dyad{i, j}]

		return ok
	}
	_, ok := g.edgeSet[canonical(i, j)]

	return ok
}

// Degree returns the undirected degree of node i. Panics is avoided by
// returning 0 for directed graphs (use OutDegree/InDegree there instead).
func (g *Graph) Degree(i int) int {
	if g.directed {
		return 0
	}

	return g.degree[i]
}

// OutDegree returns node i's out-degree (0 for undirected graphs).
func (g *Graph) OutDegree(i int) int {
	if !g.directed {
		return 0
	}

	return g.outDeg[i]
}

// InDegree returns node i's in-degree (0 for undirected graphs).
func (g *Graph) InDegree(i int) int {
	if !g.directed {
		return 0
	}

	return g.inDeg[i]
}

// Neighbours returns node i's neighbour list (undirected graphs only). The
// returned slice is owned by the Graph and must not be mutated by callers.
func (g *Graph) Neighbours(i int) []int {
	if g.directed {
		return nil
	}

	return g.neighbours[i]
}

// OutNeighbours returns node i's out-neighbour list (directed graphs only).
func (g *Graph) OutNeighbours(i int) []int {
	if !g.directed {
		return nil
	}

	return g.out[i]
}

// InNeighbours returns node i's in-neighbour list (directed graphs only).
func (g *Graph) InNeighbours(i int) []int {
	if !g.directed {
		return nil
	}

	return g.in[i]
}

// validToggle checks the node-range and mode preconditions shared by
// InsertEdge and RemoveEdge.
func (g *Graph) validToggle(i, j int) error {
	if i < 0 || i >= g.n || j < 0 || j >= g.n {
		return ErrNodeRange
	}
	if i == j {
		return ErrSelfLoop
	}
	if g.bipartite && g.InA(i) == g.InA(j) {
		return ErrBadMode
	}

	return nil
}

// InsertEdge adds edge/arc i->j if not already present. It is idempotent:
// if the edge already exists, InsertEdge returns (false, nil) and leaves
// the graph untouched. All invariants of §3 (degree counters, edge-exist
// set, two-path caches) are updated atomically from the caller's
// perspective before InsertEdge returns.
func (g *Graph) InsertEdge(i, j int) (bool, error) {
	if err := g.validToggle(i, j); err != nil {
		return false, err
	}
	if g.IsEdge(i, j) {
		return false, nil
	}

	g.updateTwoPaths(i, j, +1)

	var key dyad
	if g.directed {
		g.out[i] = append(g.out[i], j)
		g.in[j] = append(g.in[j], i)
		g.outDeg[i]++
		g.inDeg[j]++
		key = dyad{i, j}
		g.edgeSet[key] = struct{}{}
	} else {
		g.neighbours[i] = append(g.neighbours[i], j)
		g.neighbours[j] = append(g.neighbours[j], i)
		g.degree[i]++
		g.degree[j]++
		key = canonical(i, j)
		g.edgeSet[key] = struct{}{}
	}
	g.numEdges++
	g.edgePos[key] = len(g.edgeList)
	g.edgeList = append(g.edgeList, [2]int{i, j})

	return true, nil
}

// RemoveEdge deletes edge/arc i->j if present. It is idempotent: removing
// an absent edge returns (false, nil).
func (g *Graph) RemoveEdge(i, j int) (bool, error) {
	if err := g.validToggle(i, j); err != nil {
		return false, err
	}
	if !g.IsEdge(i, j) {
		return false, nil
	}

	g.updateTwoPaths(i, j, -1)

	var key dyad
	if g.directed {
		g.out[i] = removeValue(g.out[i], j)
		g.in[j] = removeValue(g.in[j], i)
		g.outDeg[i]--
		g.inDeg[j]--
		key = dyad{i, j}
		delete(g.edgeSet, key)
	} else {
		g.neighbours[i] = removeValue(g.neighbours[i], j)
		g.neighbours[j] = removeValue(g.neighbours[j], i)
		g.degree[i]--
		g.degree[j]--
		key = canonical(i, j)
		delete(g.edgeSet, key)
	}
	g.numEdges--
	g.removeFromEdgeList(key)

	return true, nil
}

// removeFromEdgeList deletes key's entry from edgeList in O(1) by swapping
// it with the last element before truncating, then fixing up the displaced
// element's recorded position.
func (g *Graph) removeFromEdgeList(key dyad) {
	pos, ok := g.edgePos[key]
	if !ok {
		return
	}
	last := len(g.edgeList) - 1
	if pos != last {
		g.edgeList[pos] = g.edgeList[last]
		moved := g.edgeList[pos]
		var movedKey dyad
		if g.directed {
			movedKey = dyad{moved[0], moved[1]}
		} else {
			movedKey = canonical(moved[0], moved[1])
		}
		g.edgePos[movedKey] = pos
	}
	g.edgeList = g.edgeList[:last]
	delete(g.edgePos, key)
}

// removeValue deletes the first occurrence of v from s, preserving the
// relative order of the remaining elements.
func removeValue(s []int, v int) []int {
	for idx, x := range s {
		if x == v {
			return append(s[:idx], s[idx+1:]...)
		}
	}

	return s
}

// updateTwoPaths applies the incremental two-path maintenance rule for a
// toggle of i,j with the given sign (+1 insert, -1 remove), using the
// adjacency state as it stands *before* the edge mutation is applied by the
// caller. This is the core algorithm of §4.1: every two-path entry touched
// by this single edge is updated in one pass, using only the pre-toggle
// neighbour lists so the toggled edge itself is never double-counted.
func (g *Graph) updateTwoPaths(i, j int, sign int) {
	switch {
	case g.bipartite:
		g.updateTwoPathsBipartite(i, j, sign)
	case g.directed:
		g.updateTwoPathsDirected(i, j, sign)
	default:
		g.updateTwoPathsUndirected(i, j, sign)
	}
}

// updateTwoPathsUndirected implements: for every neighbour k of j other
// than i, twoPath(i,k) += sign (path i-j-k); for every neighbour k of i
// other than j, twoPath(j,k) += sign (path j-i-k).
func (g *Graph) updateTwoPathsUndirected(i, j int, sign int) {
	store := g.twoPathUndirected
	for _, k := range g.neighbours[j] {
		if k != i {
			store.Add(i, k, sign)
		}
	}
	for _, k := range g.neighbours[i] {
		if k != j {
			store.Add(j, k, sign)
		}
	}
}

// updateTwoPathsBipartite implements the rule of spec.md §4.1 verbatim: for
// i in A, j in B, for every neighbour k of j in A other than i,
// twoPath_A(i,k) += sign; for every neighbour k of i in B other than j,
// twoPath_B(j,k) += sign. The endpoints may arrive in either order, so the
// A/B roles are resolved from InA rather than assumed.
func (g *Graph) updateTwoPathsBipartite(i, j int, sign int) {
	a, b := i, j
	if !g.InA(a) {
		a, b = j, i
	}
	// a in A, b in B. a's neighbours lie in B, b's neighbours lie in A.
	// twoPathB is sized [nB x nB]; its indices are local (global id - nA).
	for _, k := range g.neighbours[b] { // k in A, neighbour of b
		if k != a {
			g.twoPathA.Add(a, k, sign)
		}
	}
	for _, k := range g.neighbours[a] { // k in B, neighbour of a
		if k != b {
			g.twoPathB.Add(g.localB(b), g.localB(k), sign)
		}
	}
}

// localB converts a global bipartite-partition-B node id into the local
// [0,nB) index used by twoPathB's dense representation.
func (g *Graph) localB(i int) int { return i - g.nA }

// updateTwoPathsDirected maintains the three directed two-path flavours on
// insertion/removal of arc i->j:
//
//   - out (shared out-neighbours): for every x with x->j (x in in[j], x!=i),
//     twoPathOut(i,x) += sign (i and x now both point at j).
//   - in (shared in-neighbours): for every x with i->x (x in out[i], x!=j),
//     twoPathIn(j,x) += sign (i now points at both j and x).
//   - mixed (directed path a->i->j->b): for every a with a->i (a in in[i],
//     a!=j), twoPathMixed(a,j) += sign; for every b with j->b (b in out[j],
//     b!=i), twoPathMixed(i,b) += sign.
func (g *Graph) updateTwoPathsDirected(i, j int, sign int) {
	for _, x := range g.in[j] {
		if x != i {
			g.twoPathOut.Add(i, x, sign)
		}
	}
	for _, x := range g.out[i] {
		if x != j {
			g.twoPathIn.Add(j, x, sign)
		}
	}
	for _, a := range g.in[i] {
		if a != j {
			g.twoPathMixed.Add(a, j, sign)
		}
	}
	for _, b := range g.out[j] {
		if b != i {
			g.twoPathMixed.Add(i, b, sign)
		}
	}
}

// TwoPath returns the number of length-2 paths between i and j in the
// appropriate same-mode sense (undirected non-bipartite: common neighbours;
// bipartite: common opposite-mode neighbours; directed: mixed-flavour
// common intermediate). O(1) if the cache is enabled, O(deg) otherwise.
func (g *Graph) TwoPath(i, j int) int {
	switch {
	case g.bipartite:
		return g.twoPathBipartite(i, j)
	case g.directed:
		return g.twoPathDirectedMixed(i, j)
	default:
		return g.twoPathUndirectedCount(i, j)
	}
}

func (g *Graph) twoPathUndirectedCount(i, j int) int {
	if g.twoPathUndirected.Enabled() {
		return g.twoPathUndirected.Get(i, j)
	}

	return countCommon(g.neighbours[i], g.neighbours[j])
}

func (g *Graph) twoPathBipartite(i, j int) int {
	if g.InA(i) {
		if g.twoPathA.Enabled() {
			return g.twoPathA.Get(i, j)
		}

		return countCommon(g.neighbours[i], g.neighbours[j])
	}
	if g.twoPathB.Enabled() {
		return g.twoPathB.Get(g.localB(i), g.localB(j))
	}

	return countCommon(g.neighbours[i], g.neighbours[j])
}

// TwoPathOut returns the shared-out-neighbour count between i and j.
func (g *Graph) TwoPathOut(i, j int) int {
	if g.twoPathOut.Enabled() {
		return g.twoPathOut.Get(i, j)
	}

	return countCommon(g.out[i], g.out[j])
}

// TwoPathIn returns the shared-in-neighbour count between i and j.
func (g *Graph) TwoPathIn(i, j int) int {
	if g.twoPathIn.Enabled() {
		return g.twoPathIn.Get(i, j)
	}

	return countCommon(g.in[i], g.in[j])
}

func (g *Graph) twoPathDirectedMixed(i, j int) int {
	if g.twoPathMixed.Enabled() {
		return g.twoPathMixed.Get(i, j)
	}

	count := 0
	for _, k := range g.out[i] {
		for _, x := range g.in[j] {
			if k == x {
				count++

				break
			}
		}
	}

	return count
}

// countCommon counts shared elements of a and b by brute force; used only
// as the O(deg) fallback when the cache is disabled.
func countCommon(a, b []int) int {
	count := 0
	for _, x := range a {
		for _, y := range b {
			if x == y {
				count++

				break
			}
		}
	}

	return count
}
