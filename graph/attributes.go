package graph

import "math"

// NAInt is the sentinel "missing" value for categorical attribute vectors.
const NAInt = math.MinInt64

// attributeSet holds the three attribute families keyed by user-chosen
// name. Continuous and binary attributes use NaN/negative-one sentinels
// respectively so the zero value of a slice element never silently reads as
// "present"; callers use the accessors below, which report ok=false for an
// NA value, rather than comparing directly.
type attributeSet struct {
	n           int
	binary      map[string][]int8 // -1 = NA, else 0/1
	categorical map[string][]int64
	continuous  map[string][]float64
}

func newAttributeSet(n int) *attributeSet {
	return &attributeSet{
		n:           n,
		binary:      make(map[string][]int8),
		categorical: make(map[string][]int64),
		continuous:  make(map[string][]float64),
	}
}

// SetBinary installs a binary attribute vector (values 0, 1, or -1 for NA).
func (g *Graph) SetBinary(name string, values []int8) {
	g.attrs.binary[name] = values
}

// SetCategorical installs a categorical attribute vector (NAInt marks NA).
func (g *Graph) SetCategorical(name string, values []int64) {
	g.attrs.categorical[name] = values
}

// SetContinuous installs a continuous attribute vector (math.NaN marks NA).
func (g *Graph) SetContinuous(name string, values []float64) {
	g.attrs.continuous[name] = values
}

// Binary returns node i's value for the named binary attribute and whether
// it is present (ok=false on unknown attribute or out-of-range node).
func (g *Graph) Binary(name string, i int) (val int8, ok bool) {
	v, present := g.attrs.binary[name]
	if !present || i < 0 || i >= len(v) || v[i] < 0 {
		return 0, false
	}

	return v[i], true
}

// Categorical returns node i's value for the named categorical attribute.
func (g *Graph) Categorical(name string, i int) (val int64, ok bool) {
	v, present := g.attrs.categorical[name]
	if !present || i < 0 || i >= len(v) || v[i] == NAInt {
		return 0, false
	}

	return v[i], true
}

// Continuous returns node i's value for the named continuous attribute.
func (g *Graph) Continuous(name string, i int) (val float64, ok bool) {
	v, present := g.attrs.continuous[name]
	if !present || i < 0 || i >= len(v) || math.IsNaN(v[i]) {
		return 0, false
	}

	return v[i], true
}

// HasAttribute reports whether name is registered in any of the three
// attribute families.
func (g *Graph) HasAttribute(name string) bool {
	if _, ok := g.attrs.binary[name]; ok {
		return true
	}
	if _, ok := g.attrs.categorical[name]; ok {
		return true
	}
	if _, ok := g.attrs.continuous[name]; ok {
		return true
	}

	return false
}
