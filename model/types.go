package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/ergmee/changestat"
	"github.com/katalvlaran/ergmee/graph"
)

// TermBuilder constructs a changestat.Statistic from a term's parsed
// argument list, validating against the target graph where a term needs to
// know about an attribute (e.g. rejecting an Activity term naming an
// attribute the graph never registered).
type TermBuilder func(g *graph.Graph, args []string) (changestat.Statistic, error)

// Entry is one registered term: its canonical display name, its reporting
// Kind, and the builder that parses its arguments.
type Entry struct {
	Name  string
	Kind  changestat.ParamKind
	Build TermBuilder
}

// Registry is a case-insensitive name -> Entry table. The zero value is not
// usable; construct with NewRegistry.
type Registry struct {
	entries map[string]Entry
}

// NewRegistry returns a Registry pre-populated with every built-in term
// family (structural, alternating, four-cycle, bipartite, attribute).
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[string]Entry)}
	registerBuiltins(r)

	return r
}

// Register adds or replaces an entry under name (case-insensitive).
func (r *Registry) Register(name string, kind changestat.ParamKind, build TermBuilder) {
	r.entries[strings.ToLower(name)] = Entry{Name: name, Kind: kind, Build: build}
}

// Lookup returns the entry registered under name, if any.
func (r *Registry) Lookup(name string) (Entry, bool) {
	e, ok := r.entries[strings.ToLower(name)]

	return e, ok
}

// Build parses termString and constructs the corresponding Statistic
// against g. g supplies the attribute validation context; it is not
// retained by the returned Statistic.
func (r *Registry) Build(g *graph.Graph, termString string) (changestat.Statistic, error) {
	name, args, err := parseTerm(termString)
	if err != nil {
		return nil, err
	}

	entry, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownTerm)
	}

	stat, err := entry.Build(g, args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", entry.Name, err)
	}

	return stat, nil
}

// BuildAll parses and builds every term string in order, stopping at the
// first error.
func (r *Registry) BuildAll(g *graph.Graph, termStrings []string) ([]changestat.Statistic, error) {
	stats := make([]changestat.Statistic, 0, len(termStrings))
	for _, ts := range termStrings {
		stat, err := r.Build(g, ts)
		if err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}

	return stats, nil
}

// requireArgs checks args has exactly n elements.
func requireArgs(args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("expected %d argument(s), got %d: %w", n, len(args), ErrBadArgs)
	}

	return nil
}

// argFloat parses args[idx] as a float64.
func argFloat(args []string, idx int) (float64, error) {
	v, err := strconv.ParseFloat(args[idx], 64)
	if err != nil {
		return 0, fmt.Errorf("argument %d (%q) not numeric: %w", idx, args[idx], ErrBadArgs)
	}

	return v, nil
}

// argInt parses args[idx] as an int.
func argInt(args []string, idx int) (int, error) {
	v, err := strconv.Atoi(args[idx])
	if err != nil {
		return 0, fmt.Errorf("argument %d (%q) not an integer: %w", idx, args[idx], ErrBadArgs)
	}

	return v, nil
}

// requireAttribute checks that g carries the named attribute.
func requireAttribute(g *graph.Graph, name string) error {
	if !g.HasAttribute(name) {
		return fmt.Errorf("%q: %w", name, ErrUnknownAttribute)
	}

	return nil
}
