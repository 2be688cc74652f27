package simulate

import "context"

// Run executes burn-in then SampleSize rounds of interval-sampling,
// emitting a network snapshot and a cumulative-statistics line after each
// round (spec.md §4.5). ctx is checked before burn-in and before each
// round; a block of steps, once started, runs to completion.
func (s *Simulator) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.runBlock(s.cfg.BurnIn); err != nil {
		return err
	}

	for sample := 1; sample <= s.cfg.SampleSize; sample++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.runBlock(s.cfg.Interval); err != nil {
			return err
		}

		if s.netOut != nil {
			if err := s.netOut.WriteNetwork(sample, s.g); err != nil {
				return err
			}
		}

		if err := writeStatsLine(s.statsW, s.cumStat); err != nil {
			return err
		}

		s.log.Info().
			Int("sample", sample).
			Int("num_edges", s.g.NumEdges()).
			Msg("sample emitted")
	}

	return nil
}
