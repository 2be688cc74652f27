// Package wiring assembles a graph, its change-statistics, and the
// observed sufficient statistics from a parsed config.Config, the one
// piece of glue every cmd/ergm subcommand needs before it can hand off to
// package estimator or package simulate.
package wiring

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/ergmee/changestat"
	"github.com/katalvlaran/ergmee/config"
	"github.com/katalvlaran/ergmee/geodesic"
	"github.com/katalvlaran/ergmee/graph"
	"github.com/katalvlaran/ergmee/model"
	"github.com/katalvlaran/ergmee/netio"
	"github.com/katalvlaran/ergmee/sampler"
)

// Built is everything downstream commands need: the graph seeded from the
// network file, the term list, the observed sufficient statistics, and the
// proposal kernel selected by cfg's sampler flags.
type Built struct {
	Graph    *graph.Graph
	Stats    []changestat.Statistic
	ObsStats []float64
	Sampler  sampler.Sampler
}

// Load builds a Built from cfg: constructs the graph (with its bipartite /
// directed options), loads whichever attribute files cfg names, reads the
// network file and bootstraps observed statistics against it, builds the
// registered terms, and selects the TNT/IFD/Basic sampler cfg asks for.
func Load(cfg *config.Config) (*Built, error) {
	g := graph.New(cfg.NumNodes, graphOptions(cfg)...)

	if err := loadAttributes(g, cfg); err != nil {
		return nil, err
	}

	reg := model.NewRegistry()
	stats, err := reg.BuildAll(g, cfg.Terms())
	if err != nil {
		return nil, fmt.Errorf("building terms: %w", err)
	}

	if cfg.DyadCovarFile != "" {
		cov, err := loadDyadCovariate(cfg)
		if err != nil {
			return nil, err
		}
		stats = append(stats, cov)
	}

	pairs, err := readNetworkPairs(cfg.NetworkFile)
	if err != nil {
		return nil, err
	}

	obsStats, err := netio.BootstrapObservedStatistics(g, pairs, stats)
	if err != nil {
		return nil, fmt.Errorf("bootstrapping observed statistics: %w", err)
	}

	smp, err := buildSampler(cfg, g, stats)
	if err != nil {
		return nil, err
	}

	return &Built{Graph: g, Stats: stats, ObsStats: obsStats, Sampler: smp}, nil
}

func graphOptions(cfg *config.Config) []graph.Option {
	var opts []graph.Option
	if cfg.IsDirected {
		opts = append(opts, graph.WithDirected())
	}
	if cfg.IsBipartite {
		opts = append(opts, graph.WithBipartite(cfg.NumNodesA))
	}

	return opts
}

func loadAttributes(g *graph.Graph, cfg *config.Config) error {
	load := func(path string, apply func(*netio.AttributeTable) error) error {
		if path == "" {
			return nil
		}
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()

		table, err := netio.ReadAttributeTable(f)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		return apply(table)
	}

	// Every column in a table is loaded under its own name: spec.md §6
	// names one file per attribute kind, not one column per file.
	loadAll := func(path string, names []string, apply func(*netio.AttributeTable, string) error) error {
		return load(path, func(t *netio.AttributeTable) error {
			cols := names
			if cols == nil {
				cols = t.Names
			}
			for _, name := range cols {
				if err := apply(t, name); err != nil {
					return fmt.Errorf("column %s: %w", name, err)
				}
			}

			return nil
		})
	}

	if err := loadAll(cfg.BinaryAttrFile, nil, func(t *netio.AttributeTable, n string) error {
		return netio.LoadBinary(g, t, n)
	}); err != nil {
		return err
	}
	if err := loadAll(cfg.CategoricalAttrFile, nil, func(t *netio.AttributeTable, n string) error {
		return netio.LoadCategorical(g, t, n)
	}); err != nil {
		return err
	}

	return loadAll(cfg.ContinuousAttrFile, nil, func(t *netio.AttributeTable, n string) error {
		return netio.LoadContinuous(g, t, n)
	})
}

// loadDyadCovariate reads cfg.DyadCovarFile as a Pajek network on cfg's node
// set, precomputes its all-pairs geodesic distances (package geodesic), and
// returns the resulting DyadicCovariate term under cfg.DyadCovarName
// (defaulting to "GeodesicDistance"). The covariate network is independent
// of the ERGM graph itself — it supplies a fixed pairwise covariate, not a
// second copy of the graph being estimated.
func loadDyadCovariate(cfg *config.Config) (changestat.Statistic, error) {
	pairs, err := readNetworkPairs(cfg.DyadCovarFile)
	if err != nil {
		return nil, err
	}

	cg := graph.New(cfg.NumNodes)
	for _, p := range pairs {
		if _, err := cg.InsertEdge(p[0], p[1]); err != nil {
			return nil, fmt.Errorf("loading dyad covariate %s: %w", cfg.DyadCovarFile, err)
		}
	}

	table, err := geodesic.ComputeDistances(context.Background(), cg)
	if err != nil {
		return nil, fmt.Errorf("computing geodesic distances for %s: %w", cfg.DyadCovarFile, err)
	}

	name := cfg.DyadCovarName
	if name == "" {
		name = "GeodesicDistance"
	}

	return table.Covariate(name), nil
}

func readNetworkPairs(path string) ([][2]int, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	net, err := netio.ReadPajek(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return net.Pairs, nil
}

func buildSampler(cfg *config.Config, g *graph.Graph, stats []changestat.Statistic) (sampler.Sampler, error) {
	switch {
	case cfg.UseIFDSampler:
		return sampler.NewIFD(g, stats, cfg.NumArcs, cfg.IFD_K), nil
	case cfg.UseTNTSampler:
		return sampler.NewTNT(g, stats, cfg.TieProb), nil
	default:
		return sampler.NewBasic(g, stats), nil
	}
}
