package trajectory

import (
	"policysim/pkg/core/effect"
)

// =============================================================================
// PROVINCIAL ADJUSTMENT
// =============================================================================

// ProvinceDelta is the horizon-end change one province sees on one outcome,
// after its delivery multipliers scale the aggregate composed effect.
type ProvinceDelta struct {
	Province string
	Outcome  string
	Baseline float64 // Drifted do-nothing value at the horizon
	Adjusted float64 // Province-scaled intervention value at the horizon
	Delta    float64 // Adjusted - Baseline
}

// ProvinceDeltas computes horizon-end deltas for every province and outcome.
// The province's three fixed delivery multipliers are averaged into a single
// scalar applied after aggregate effect composition; levels themselves are
// national. Per-province level overrides replace the national level for that
// province's composition.
func (g *Generator) ProvinceDeltas(levels map[string]float64, overrides map[string]map[string]float64, horizonYears int) []ProvinceDelta {
	c := g.Composer.Catalog
	var out []ProvinceDelta
	for pi := range c.Provinces {
		p := &c.Provinces[pi]
		scalar := p.EffectScalar()

		provLevels := levels
		if o, ok := overrides[p.ID]; ok && len(o) > 0 {
			provLevels = mergeLevels(levels, o)
		}
		synergies := effect.Detect(c, provLevels)

		for _, outc := range c.Outcomes {
			drifted := driftedBaseline(outc.Baseline, outc.Polarity, 1.0)
			composed := g.Composer.Effect(outc.ID, provLevels, synergies, float64(horizonYears))
			adjusted := drifted * (1 + composed*scalar)
			out = append(out, ProvinceDelta{
				Province: p.ID,
				Outcome:  outc.ID,
				Baseline: drifted,
				Adjusted: adjusted,
				Delta:    adjusted - drifted,
			})
		}
	}
	return out
}

func mergeLevels(national, override map[string]float64) map[string]float64 {
	merged := make(map[string]float64, len(national)+len(override))
	for id, lv := range national {
		merged[id] = lv
	}
	for id, lv := range override {
		merged[id] = lv
	}
	return merged
}
