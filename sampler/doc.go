// Package sampler implements the MCMC edge-toggle kernels: Basic (uniform
// dyad proposal), TNT (tie/no-tie biased proposal with a Hastings
// correction), and IFD (imposed-fixed-density, which swaps one existing
// edge for one non-edge every step so the arc count can never drift from
// its numArcs target, rather than toggling a single dyad).
//
// All three share the same acceptance rule and the same trick for computing
// a removal proposal's change statistics: to propose removing an existing
// edge, the sampler removes it, asks each Statistic for its Delta (which is
// only meaningful pre-insertion), and reinserts it before deciding
// accept/reject — leaving the graph exactly as it was if the graph must be
// left untouched pending the decision. This keeps every Statistic.Delta
// implementation honest to its single documented contract ("the change
// inserting this edge would cause") instead of asking each family to also
// reason about removal.
package sampler
