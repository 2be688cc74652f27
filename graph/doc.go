// Package graph implements the ERGM sufficient-statistic graph store: node
// set, directed/undirected/bipartite adjacency, vertex attributes, and the
// incrementally maintained two-path cache that the change-statistic library
// (package changestat) reads on every proposed toggle.
//
// Graph is mutated only through InsertEdge/RemoveEdge, which update degree
// counters, neighbour lists, the edge-existence set, and every enabled
// two-path cache entry as a single indivisible step from the caller's point
// of view (there is no internal suspension point). Everything else on Graph
// is a read accessor.
//
// Node identity is a plain 0-based int index, never a pointer or handle —
// callers (sampler, changestat) pass ids through the hot path rather than
// walking back-pointers, per the ownership-centralisation design note of
// the originating specification.
package graph
