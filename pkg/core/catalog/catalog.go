package catalog

import (
	"fmt"
)

// =============================================================================
// CATALOG (Validated, Immutable, Resolved)
// =============================================================================

// Catalog is the validated, immutable configuration object handed to the
// engine at construction. Cross-entity references (impact → outcome,
// synergy → partner, prerequisite → intervention) are resolved to indices
// once here and never re-looked-up per call.
type Catalog struct {
	Interventions []Intervention
	Outcomes      []Outcome
	Provinces     []Province

	interventionIdx map[string]int
	outcomeIdx      map[string]int
	provinceIdx     map[string]int

	// impactsByOutcome[outcomeIndex] lists (interventionIndex, impactIndex)
	// pairs so effect composition walks only declared impacts.
	impactsByOutcome [][]ImpactRef
}

// ImpactRef is a resolved handle to one intervention's impact on one outcome.
type ImpactRef struct {
	Intervention int // Index into Catalog.Interventions
	Impact       int // Index into that intervention's Impacts slice
}

// New validates the raw definitions and builds the resolved catalog.
// Configuration errors (degenerate ranges, dangling references, duplicate
// synergy edges) are rejected here, never at compute time.
func New(interventions []Intervention, outcomes []Outcome, provinces []Province) (*Catalog, error) {
	c := &Catalog{
		Interventions:   interventions,
		Outcomes:        outcomes,
		Provinces:       provinces,
		interventionIdx: make(map[string]int, len(interventions)),
		outcomeIdx:      make(map[string]int, len(outcomes)),
		provinceIdx:     make(map[string]int, len(provinces)),
	}

	for i, o := range outcomes {
		if o.ID == "" {
			return nil, fmt.Errorf("outcome %d: empty id", i)
		}
		if _, dup := c.outcomeIdx[o.ID]; dup {
			return nil, fmt.Errorf("duplicate outcome '%s'", o.ID)
		}
		if o.Polarity != HigherIsBetter && o.Polarity != LowerIsBetter {
			return nil, fmt.Errorf("outcome '%s': unknown polarity '%s'", o.ID, o.Polarity)
		}
		c.outcomeIdx[o.ID] = i
	}

	for i, iv := range interventions {
		if iv.ID == "" {
			return nil, fmt.Errorf("intervention %d: empty id", i)
		}
		if _, dup := c.interventionIdx[iv.ID]; dup {
			return nil, fmt.Errorf("duplicate intervention '%s'", iv.ID)
		}
		if iv.Min >= iv.Max {
			return nil, fmt.Errorf("intervention '%s': degenerate range [%g, %g]", iv.ID, iv.Min, iv.Max)
		}
		if iv.Baseline < iv.Min || iv.Baseline > iv.Max {
			return nil, fmt.Errorf("intervention '%s': baseline %g outside [%g, %g]", iv.ID, iv.Baseline, iv.Min, iv.Max)
		}
		switch iv.Scaling {
		case ScalingLinear, ScalingLogarithmic, ScalingSigmoid:
		default:
			return nil, fmt.Errorf("intervention '%s': unknown scaling '%s'", iv.ID, iv.Scaling)
		}
		c.interventionIdx[iv.ID] = i
	}

	// Second pass: references can only be checked once all ids are indexed.
	pairSeen := make(map[string]bool)
	for _, iv := range interventions {
		for _, pre := range iv.Prerequisites {
			if _, ok := c.interventionIdx[pre]; !ok {
				return nil, fmt.Errorf("intervention '%s': prerequisite '%s' not in catalog", iv.ID, pre)
			}
		}
		seen := make(map[string]bool, len(iv.Synergies))
		for _, syn := range iv.Synergies {
			if _, ok := c.interventionIdx[syn.Partner]; !ok {
				return nil, fmt.Errorf("intervention '%s': synergy partner '%s' not in catalog", iv.ID, syn.Partner)
			}
			if syn.Partner == iv.ID {
				return nil, fmt.Errorf("intervention '%s': synergy with itself", iv.ID)
			}
			if syn.Multiplier < 1 {
				return nil, fmt.Errorf("intervention '%s': synergy multiplier %g < 1", iv.ID, syn.Multiplier)
			}
			if seen[syn.Partner] {
				return nil, fmt.Errorf("intervention '%s': duplicate synergy edge to '%s'", iv.ID, syn.Partner)
			}
			seen[syn.Partner] = true

			// An edge declared on both endpoints is the same duplicate.
			key := pairKey(iv.ID, syn.Partner)
			if pairSeen[key] {
				return nil, fmt.Errorf("synergy between '%s' and '%s' declared twice", iv.ID, syn.Partner)
			}
			pairSeen[key] = true
		}
		for _, imp := range iv.Impacts {
			if _, ok := c.outcomeIdx[imp.Outcome]; !ok {
				return nil, fmt.Errorf("intervention '%s': impact outcome '%s' not in catalog", iv.ID, imp.Outcome)
			}
		}
		if iv.Timing.ImplementationDelay < 0 || iv.Timing.RampUpPeriod < 0 {
			return nil, fmt.Errorf("intervention '%s': negative timing", iv.ID)
		}
	}

	for i, p := range provinces {
		if p.ID == "" {
			return nil, fmt.Errorf("province %d: empty id", i)
		}
		if _, dup := c.provinceIdx[p.ID]; dup {
			return nil, fmt.Errorf("duplicate province '%s'", p.ID)
		}
		c.provinceIdx[p.ID] = i
	}

	// Resolve impacts per outcome for the hot composition path.
	c.impactsByOutcome = make([][]ImpactRef, len(outcomes))
	for ii, iv := range interventions {
		for ji, imp := range iv.Impacts {
			oi := c.outcomeIdx[imp.Outcome]
			c.impactsByOutcome[oi] = append(c.impactsByOutcome[oi], ImpactRef{Intervention: ii, Impact: ji})
		}
	}

	return c, nil
}

// pairKey builds the canonical unordered key for two intervention ids.
func pairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "|" + b
}

// Intervention returns the intervention with the given id.
func (c *Catalog) Intervention(id string) (*Intervention, bool) {
	i, ok := c.interventionIdx[id]
	if !ok {
		return nil, false
	}
	return &c.Interventions[i], true
}

// InterventionIndex returns the resolved index for an intervention id.
func (c *Catalog) InterventionIndex(id string) (int, bool) {
	i, ok := c.interventionIdx[id]
	return i, ok
}

// Outcome returns the outcome with the given id.
func (c *Catalog) Outcome(id string) (*Outcome, bool) {
	i, ok := c.outcomeIdx[id]
	if !ok {
		return nil, false
	}
	return &c.Outcomes[i], true
}

// Province returns the province with the given id.
func (c *Catalog) Province(id string) (*Province, bool) {
	i, ok := c.provinceIdx[id]
	if !ok {
		return nil, false
	}
	return &c.Provinces[i], true
}

// ImpactsOn returns the resolved impact handles for one outcome id.
// Unknown outcomes return nil: an outcome nothing targets composes to zero.
func (c *Catalog) ImpactsOn(outcomeID string) []ImpactRef {
	i, ok := c.outcomeIdx[outcomeID]
	if !ok {
		return nil
	}
	return c.impactsByOutcome[i]
}
