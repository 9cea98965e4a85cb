// Package trajectory turns composed intervention effects into per-outcome
// time series: the do-nothing drift baseline, the intervention-adjusted path,
// a reference-optimal approach curve, and widening confidence bounds.
// Everything here is deterministic: identical inputs yield identical series.
package trajectory

import (
	"math"

	"policysim/pkg/core/catalog"
	"policysim/pkg/core/effect"
)

// =============================================================================
// DRIFT & CURVE CONSTANTS
// =============================================================================

const (
	// Do-nothing counterfactual drift over the full horizon: disease burden
	// creeps up, positive outcomes improve slowly on their own.
	diseaseDriftFraction  = 0.06
	positiveDriftFraction = 0.02

	// Reference-optimal targets: fraction moved toward "best achievable".
	optimalReductionFraction = 0.30 // Lower-is-better outcomes
	optimalGainFraction      = 0.12 // Higher-is-better outcomes
	optimalShape             = 0.7  // Concave approach exponent

	// Confidence-bound width: grows with sqrt(year), capped.
	boundGrowthPerSqrtYear = 0.03
	boundCapFraction       = 0.15
)

// ProjectedOutcome is one year of a projected series.
type ProjectedOutcome struct {
	Year             int
	Baseline         float64 // Natural-drift do-nothing value
	WithIntervention float64 // Drifted baseline adjusted by the composed effect
	OptimalPolicy    float64 // Reference-optimal approach curve
	LowerBound       float64
	UpperBound       float64
}

// Generator produces projected outcome series from a composed effect stream.
type Generator struct {
	Composer *effect.Composer
}

// NewGenerator builds a generator over a validated catalog.
func NewGenerator(c *catalog.Catalog) *Generator {
	return &Generator{Composer: effect.NewComposer(c)}
}

// Project produces the ordered series for one outcome over horizonYears,
// index 0 through horizonYears inclusive. The series is fully recomputed on
// every call; nothing is cached.
func (g *Generator) Project(outcomeID string, levels map[string]float64, synergies []effect.ActiveSynergy, horizonYears int, baselineValue float64) []ProjectedOutcome {
	out, ok := g.Composer.Catalog.Outcome(outcomeID)
	polarity := catalog.LowerIsBetter
	if ok {
		polarity = out.Polarity
	}

	series := make([]ProjectedOutcome, horizonYears+1)
	for year := 0; year <= horizonYears; year++ {
		progress := 0.0
		if horizonYears > 0 {
			progress = float64(year) / float64(horizonYears)
		}

		drifted := driftedBaseline(baselineValue, polarity, progress)
		composed := g.Composer.Effect(outcomeID, levels, synergies, float64(year))
		adjusted := drifted * (1 + composed)

		width := boundGrowthPerSqrtYear * math.Sqrt(float64(year))
		if width > boundCapFraction {
			width = boundCapFraction
		}

		series[year] = ProjectedOutcome{
			Year:             year,
			Baseline:         drifted,
			WithIntervention: adjusted,
			OptimalPolicy:    optimalCurve(baselineValue, polarity, progress),
			LowerBound:       adjusted * (1 - width),
			UpperBound:       adjusted * (1 + width),
		}
	}
	return series
}

// ProjectAll produces series for every catalog outcome keyed by outcome id.
func (g *Generator) ProjectAll(levels map[string]float64, synergies []effect.ActiveSynergy, horizonYears int) map[string][]ProjectedOutcome {
	out := make(map[string][]ProjectedOutcome, len(g.Composer.Catalog.Outcomes))
	for _, o := range g.Composer.Catalog.Outcomes {
		out[o.ID] = g.Project(o.ID, levels, synergies, horizonYears, o.Baseline)
	}
	return out
}

// driftedBaseline models the do-nothing counterfactual: disease-type outcomes
// worsen by a small fixed fraction over the horizon, positive outcomes improve
// by a smaller one.
func driftedBaseline(baseline float64, polarity catalog.Polarity, progress float64) float64 {
	if polarity == catalog.HigherIsBetter {
		return baseline * (1 + positiveDriftFraction*progress)
	}
	return baseline * (1 + diseaseDriftFraction*progress)
}

// optimalCurve is the concave approach toward the fixed-fraction target,
// independent of the actual intervention mix.
func optimalCurve(baseline float64, polarity catalog.Polarity, progress float64) float64 {
	target := baseline * (1 - optimalReductionFraction)
	if polarity == catalog.HigherIsBetter {
		target = baseline * (1 + optimalGainFraction)
	}
	return baseline + (target-baseline)*math.Pow(progress, optimalShape)
}
