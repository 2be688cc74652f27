package simulate

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/ergmee/changestat"
	"github.com/katalvlaran/ergmee/graph"
	"github.com/katalvlaran/ergmee/rng"
	"github.com/katalvlaran/ergmee/sampler"
)

// Config holds the simulation schedule, matching spec.md §4.5/§6.
type Config struct {
	BurnIn     int // discarded sampler steps before the first sample
	SampleSize int // number of samples to emit
	Interval   int // sampler steps run between consecutive samples
}

// NetworkWriter persists a snapshot of g labelled by its 1-based sample
// index. Implemented by package netio's Pajek writer; kept as an interface
// here so Simulator is testable without touching the filesystem.
type NetworkWriter interface {
	WriteNetwork(step int, g *graph.Graph) error
}

// Simulator draws networks from a fixed theta via burn-in plus
// interval sampling (spec.md §4.5). Like Estimator, it is single-owner:
// one goroutine drives Run to completion.
type Simulator struct {
	g       *graph.Graph
	stats   []changestat.Statistic
	smp     sampler.Sampler
	r       *rng.Source
	theta   []float64
	cfg     Config
	log     zerolog.Logger
	netOut  NetworkWriter  // nil disables network snapshots
	statsW  io.Writer      // nil disables the cumulative-statistics file
	cumStat []float64      // running obs_stats + sum(dzA), per spec.md §4.5
}

// New constructs a Simulator. obsStats seeds the cumulative statistics
// vector (pass the network's observed statistics, or a zero vector to
// track relative change from an empty graph).
func New(g *graph.Graph, stats []changestat.Statistic, smp sampler.Sampler, r *rng.Source, theta []float64, obsStats []float64, cfg Config, log zerolog.Logger, netOut NetworkWriter, statsW io.Writer) *Simulator {
	cum := make([]float64, len(obsStats))
	copy(cum, obsStats)

	th := make([]float64, len(theta))
	copy(th, theta)

	return &Simulator{
		g:       g,
		stats:   stats,
		smp:     smp,
		r:       r,
		theta:   th,
		cfg:     cfg,
		log:     log.With().Str("component", "simulator").Logger(),
		netOut:  netOut,
		statsW:  statsW,
		cumStat: cum,
	}
}

// CumulativeStatistics returns the current running statistics vector (a
// copy).
func (s *Simulator) CumulativeStatistics() []float64 {
	out := make([]float64, len(s.cumStat))
	copy(out, s.cumStat)

	return out
}

func (s *Simulator) runBlock(n int) error {
	for i := 0; i < n; i++ {
		accepted, delta, err := s.smp.Step(s.r, s.theta)
		if err != nil {
			return err
		}
		if !accepted {
			continue
		}
		for p := range s.cumStat {
			s.cumStat[p] += delta[p]
		}
	}

	return nil
}
