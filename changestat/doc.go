// Package changestat implements the change-statistic library: one Statistic
// per supported ERGM term, each able to report the instantaneous change its
// sufficient statistic would undergo if a proposed edge toggle were applied.
//
// Every Statistic is a pure function of graph state: Delta never mutates the
// graph and never depends on whether the toggle is ultimately accepted. The
// sampler (package sampler) calls Delta once per proposal, before the toggle
// is applied to the graph (for a removal, with that edge temporarily taken
// out), and applies the toggle only after the accept/reject decision (see
// graph.Graph.InsertEdge/RemoveEdge).
//
// Families:
//
//   - Structural: EdgeCount, Mutual, Asymmetric dyad counts.
//   - Star/triangle/two-path counts and their alternating (geometrically
//     decaying, parameter λ) variants.
//   - Four-cycle counts.
//   - Bipartite nodematch terms (α/β forms).
//   - Attribute-conditioned terms over binary/categorical/continuous vertex
//     attributes, with sender/receiver variants for directed graphs.
//   - A dyadic-covariate placeholder term.
package changestat
