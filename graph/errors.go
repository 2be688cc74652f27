package graph

import "errors"

// Sentinel errors for graph construction and mutation. Callers branch on
// these with errors.Is; messages are never pattern-matched as strings.
var (
	// ErrNodeRange indicates a node id outside [0, N).
	ErrNodeRange = errors.New("graph: node id out of range")

	// ErrBadMode indicates a bipartite edge endpoint in the wrong mode
	// (e.g. both endpoints in partition A).
	ErrBadMode = errors.New("graph: edge endpoints violate bipartite mode constraint")

	// ErrSelfLoop indicates i == j was passed to InsertEdge/RemoveEdge.
	ErrSelfLoop = errors.New("graph: self-loops are not permitted")

	// ErrUnknownAttribute indicates a lookup by name found no such attribute
	// vector on the graph.
	ErrUnknownAttribute = errors.New("graph: unknown attribute")

	// ErrInvariantViolation is raised only when EnableInvariantChecks is set;
	// it signals that a debug-mode re-derivation of degree or two-path state
	// disagreed with the incrementally maintained cache.
	ErrInvariantViolation = errors.New("graph: invariant violation")
)
