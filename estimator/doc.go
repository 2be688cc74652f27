// Package estimator drives an ERGM's parameter vector theta to equilibrium
// with an observed network's sufficient statistics, via Algorithm S
// (stochastic-approximation bootstrap) followed by Algorithm EE
// (equilibrium expectation).
//
// Both phases share one primitive: run a block of sampler.Sampler steps,
// accumulate the realized change-statistic vector dzA over accepted
// toggles, then fold dzA into theta by one of two update rules (classical
// or Borisenko). Algorithm S uses a simple iteration-decaying step;
// Algorithm EE additionally halves its effective step whenever dzA grows
// large relative to theta (a guard against the chain drifting away from
// equilibrium faster than the update can track it).
package estimator
