package config

import "fmt"

func wrapMissing(key string) error {
	return fmt.Errorf("%s: %w", key, ErrMissingRequiredKey)
}

// Config is the fully parsed configuration, covering every key spec.md §6
// names plus the full set its §4 cross-references imply.
type Config struct {
	IsDirected   bool
	IsBipartite  bool
	NumNodes     int
	NumNodesA    int
	NumArcs      int
	CitationERGM bool

	UseTNTSampler      bool
	UseIFDSampler      bool
	UseBorisenkoUpdate bool
	TieProb            float64 // TNT tie-proposal probability; 0 selects sampler's own default

	SamplerSteps int
	SSteps       int
	EESteps      int
	EEInnerSteps int
	ACA_S        float64
	ACA_EE       float64
	CompC        float64
	IFD_K        float64

	SampleSize int
	Interval   int
	BurnIn     int

	NetworkFile         string
	BinaryAttrFile      string
	CategoricalAttrFile string
	ContinuousAttrFile  string
	SimNetFilePrefix    string
	TraceFilePrefix     string

	// DyadCovarFile, if set, names a Pajek-format network whose geodesic
	// distances are precomputed (package geodesic) and exposed as a
	// DyadicCovariate term under DyadCovarName (default "GeodesicDistance"
	// if left blank). This is the "dyadic covariate terms (geodesic
	// distance placeholder)" term family of spec.md §4.2.
	DyadCovarFile string
	DyadCovarName string

	StructParams []string
	AttrParams   []string

	// Theta is the fixed parameter vector simulate reads from a "theta = {
	// ... }" block; unused by estimate, which starts from a zero vector.
	Theta []float64
}

// Terms returns StructParams and AttrParams concatenated in declaration
// order, the sequence package model's Registry.BuildAll expects.
func (c *Config) Terms() []string {
	terms := make([]string, 0, len(c.StructParams)+len(c.AttrParams))
	terms = append(terms, c.StructParams...)
	terms = append(terms, c.AttrParams...)

	return terms
}

// Validate checks the cross-key requirements spec.md §7 calls out as
// configuration errors (e.g. a required key absent for the chosen
// sampler), beyond what per-line parsing already catches.
func (c *Config) Validate() error {
	if c.NumNodes <= 0 {
		return wrapMissing("numNodes")
	}
	if c.IsBipartite && (c.NumNodesA <= 0 || c.NumNodesA >= c.NumNodes) {
		return wrapMissing("numNodesA")
	}
	if c.UseIFDSampler && c.NumArcs <= 0 {
		return wrapMissing("numArcs")
	}
	if len(c.StructParams) == 0 && len(c.AttrParams) == 0 {
		return wrapMissing("structParams/attrParams")
	}

	return nil
}
