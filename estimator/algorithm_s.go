package estimator

import "context"

// runAlgorithmS executes the stochastic-approximation bootstrap: SSteps
// outer iterations, each running SamplerSteps sampler steps and then
// nudging theta by -A(t)*dzA, where A(t) = ACA_S/t decays with iteration
// index so early steps move theta aggressively and later ones settle it
// (spec.md §4.4, "larger early, decaying"). Algorithm S is a warm-up: only
// Algorithm EE's outer steps are written to the trace files (spec.md §4.4
// step 4 names trace output as an EE step, not an S step).
func (e *Estimator) runAlgorithmS(ctx context.Context) error {
	for t := 1; t <= e.cfg.SSteps; t++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		dzA, err := e.accumulate(e.cfg.SamplerSteps)
		if err != nil {
			return err
		}

		a := e.cfg.ACA_S / float64(t)
		for p := range e.theta {
			e.theta[p] -= a * dzA[p]
		}

		e.log.Info().
			Str("phase", "S").
			Int("t", t).
			Float64("norm_theta", norm(e.theta)).
			Float64("norm_dzA", norm(dzA)).
			Msg("outer step")

		if err := e.checkFinite(); err != nil {
			return err
		}
	}

	return nil
}

func (e *Estimator) statNames() []string {
	names := make([]string, len(e.stats))
	for i, s := range e.stats {
		names[i] = s.Name()
	}

	return names
}
