package saju

import "encoding/json"

// ElementCounts is the element distribution of a profile, indexed by Element
type ElementCounts [5]int

// Total returns the number of counted symbols
func (c ElementCounts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// MarshalJSON encodes the counts keyed by element name, in cycle order
func (c ElementCounts) MarshalJSON() ([]byte, error) {
	m := make(map[string]int, 5)
	for _, e := range Elements {
		m[e.String()] = c[e]
	}
	return json.Marshal(m)
}

// ElementProfile summarizes the elements of a FourPillars record
type ElementProfile struct {
	Counts      ElementCounts     `json:"counts"`
	Dominant    Element           `json:"dominant"`
	Deficient   Element           `json:"deficient"`
	CoreElement Element           `json:"core_element"`
	DayStem     Stem              `json:"day_stem"`
	Core        ElementProperties `json:"core_properties"`
	Meaning     StemMeaning       `json:"day_stem_meaning"`
}

// ComputeElementProfile counts the element of every known stem and branch.
// Ties for dominant and deficient go to the element earliest in cycle order.
func ComputeElementProfile(fp FourPillars) ElementProfile {
	var counts ElementCounts
	for _, p := range fp.Pillars() {
		if p.Stem.Valid() {
			counts[p.Stem.Element()]++
		}
		if p.Branch.Valid() {
			counts[p.Branch.Element()]++
		}
	}

	dominant, deficient := Wood, Wood
	for _, e := range Elements[1:] {
		if counts[e] > counts[dominant] {
			dominant = e
		}
		if counts[e] < counts[deficient] {
			deficient = e
		}
	}

	core := fp.DayStem().Element()
	return ElementProfile{
		Counts:      counts,
		Dominant:    dominant,
		Deficient:   deficient,
		CoreElement: core,
		DayStem:     fp.DayStem(),
		Core:        core.Properties(),
		Meaning:     fp.DayStem().Meaning(),
	}
}
