package estimator

import "context"

// Run executes Algorithm S followed by Algorithm EE. It is cancellable via
// ctx between outer steps; once an outer step has started it runs to
// completion (spec.md §5, "no suspension points" within the core loop).
// On success theta holds the final estimate and the trace streams (if
// non-nil) have received one EE outer-step line each.
func (e *Estimator) Run(ctx context.Context) error {
	if err := e.runAlgorithmS(ctx); err != nil {
		return err
	}

	return e.runAlgorithmEE(ctx)
}
