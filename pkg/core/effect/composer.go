package effect

import (
	"math"

	"policysim/pkg/core/catalog"
)

// =============================================================================
// EFFECT COMPOSER
// =============================================================================

// Composer aggregates the per-outcome fractional effect of every active
// intervention. It holds only the resolved catalog; every call is a pure
// function of (levels, synergies, year).
type Composer struct {
	Catalog *catalog.Catalog
}

// NewComposer builds a composer over a validated catalog.
func NewComposer(c *catalog.Catalog) *Composer {
	return &Composer{Catalog: c}
}

// Effect returns the composed fractional effect on one outcome at one year.
// For each intervention with a declared impact on the outcome and a level away
// from baseline: normalize the delta to [-1,1], shape it by the intervention's
// scaling tag, multiply by the base effect, attenuate above the diminishing
// threshold, gate by adoption(year), and multiply by every synergy multiplier
// touching the intervention. Contributions sum across interventions; an
// outcome with no impact records composes to zero.
func (cp *Composer) Effect(outcomeID string, levels map[string]float64, synergies []ActiveSynergy, year float64) float64 {
	total := 0.0
	for _, ref := range cp.Catalog.ImpactsOn(outcomeID) {
		iv := &cp.Catalog.Interventions[ref.Intervention]
		imp := &iv.Impacts[ref.Impact]

		level, ok := levels[iv.ID]
		if !ok {
			continue
		}
		level = iv.Clamp(level)
		if level == iv.Baseline {
			continue
		}

		delta := shapeDelta(iv.NormalizedDelta(level), iv.Scaling)
		contribution := delta * imp.BaseEffect
		contribution = DiminishingReturns(contribution, level, imp.DiminishingThreshold)
		contribution *= Adoption(year, iv.Timing.ImplementationDelay, iv.Timing.RampUpPeriod)

		for _, syn := range synergies {
			if syn.Touches(iv.ID) {
				contribution *= syn.Multiplier
			}
		}

		total += contribution
	}
	return total
}

// EffectsAt composes every catalog outcome at one year.
func (cp *Composer) EffectsAt(levels map[string]float64, synergies []ActiveSynergy, year float64) map[string]float64 {
	out := make(map[string]float64, len(cp.Catalog.Outcomes))
	for _, o := range cp.Catalog.Outcomes {
		out[o.ID] = cp.Effect(o.ID, levels, synergies, year)
	}
	return out
}

// shapeDelta applies the intervention's scaling tag to the normalized delta.
// Every shape passes through 0 at baseline and ±1 at the range ends, and is
// strictly monotone, so shaping dampens or accelerates but never reverses.
func shapeDelta(delta float64, scaling catalog.ScalingFunc) float64 {
	mag := math.Abs(delta)
	sign := 1.0
	if delta < 0 {
		sign = -1.0
	}
	switch scaling {
	case catalog.ScalingLogarithmic:
		// Fast early gains: log1p(9x)/log(10) maps [0,1] onto [0,1].
		return sign * math.Log1p(9*mag) / math.Ln10
	case catalog.ScalingSigmoid:
		// Slow start, fast middle: logistic rescaled to hit exactly 0 and 1.
		lo := 1.0 / (1.0 + math.Exp(3.0))
		hi := 1.0 / (1.0 + math.Exp(-3.0))
		raw := 1.0 / (1.0 + math.Exp(-adoptionSteepness*(mag-0.5)))
		return sign * (raw - lo) / (hi - lo)
	default:
		return delta
	}
}
