// Package economics converts intervention costs and composed health effects
// into monetized impact: program cost, healthcare savings, productivity gains,
// QALYs, ROI and net benefit. All formulas are closed-form; no iteration.
package economics

import (
	"policysim/pkg/core/catalog"
	"policysim/pkg/core/effect"
	"policysim/pkg/core/healthecon"
)

// =============================================================================
// CONSTANTS & COEFFICIENTS
// =============================================================================

const (
	costUnitScale    = 1e6  // Catalog cost units are $M per normalized unit
	referenceHorizon = 10.0 // Costs in the catalog are calibrated to 10 years

	defaultPopulation   = 29.5e6
	defaultDiscountRate = 0.03
	affectedFraction    = 0.20 // Share of the population the life-expectancy effect reaches
	utilityWeight       = 0.80 // Average utility of a gained life year
)

// DefaultMonetaryCoefficients maps outcome ids to the annual monetary value
// ($) of a full unit of composed effect, split by benefit channel. Outcomes
// absent from the map contribute nothing to that channel.
func DefaultMonetaryCoefficients() (healthcare, productivity map[string]float64) {
	healthcare = map[string]float64{
		"obesity":          420e6,
		"diabetes":         610e6,
		"cardiovascular":   740e6,
		"smoking":          380e6,
		"infectious":       290e6,
		"infant_mortality": 180e6,
		"healthcare_costs": 520e6,
	}
	productivity = map[string]float64{
		"life_expectancy": 900e6,
		"healthy_years":   650e6,
		"productivity":    480e6,
	}
	return healthcare, productivity
}

// =============================================================================
// ECONOMIC IMPACT
// =============================================================================

// InterventionCost is the cost share of one intervention in a scenario.
type InterventionCost struct {
	Intervention string
	Cost         float64 // Negative = revenue
}

// EconomicImpact aggregates the monetized consequences of a scenario.
// Derived deterministically from the full input on every call.
type EconomicImpact struct {
	TotalCost         float64
	HealthcareSavings float64
	ProductivityGains float64
	QALYGained        float64
	ROI               float64 // Percent; 0 when the scenario is pure revenue
	NetBenefit        float64
	CostBreakdown     []InterventionCost
}

// Valuator prices scenarios against a validated catalog.
type Valuator struct {
	Composer     *effect.Composer
	Population   float64
	DiscountRate float64

	healthcareCoef   map[string]float64
	productivityCoef map[string]float64
}

// NewValuator builds a valuator with default population, discount rate and
// monetary coefficients.
func NewValuator(c *catalog.Catalog) *Valuator {
	h, p := DefaultMonetaryCoefficients()
	return &Valuator{
		Composer:         effect.NewComposer(c),
		Population:       defaultPopulation,
		DiscountRate:     defaultDiscountRate,
		healthcareCoef:   h,
		productivityCoef: p,
	}
}

// Impact values a scenario over the given horizon.
func (v *Valuator) Impact(levels map[string]float64, synergies []effect.ActiveSynergy, horizonYears int) EconomicImpact {
	c := v.Composer.Catalog
	horizon := float64(horizonYears)

	// -------------------------------------------------------------------------
	// Program cost: normalized delta x cost/unit x scale, prorated by horizon.
	// Negative cost-per-unit interventions (taxes) contribute revenue.
	// -------------------------------------------------------------------------
	totalCost := 0.0
	breakdown := make([]InterventionCost, 0, len(levels))
	for i := range c.Interventions {
		iv := &c.Interventions[i]
		level, ok := levels[iv.ID]
		if !ok {
			continue
		}
		delta := iv.NormalizedDelta(level)
		if delta == 0 {
			continue
		}
		cost := delta * iv.CostPerUnit * costUnitScale * (horizon / referenceHorizon)
		totalCost += cost
		breakdown = append(breakdown, InterventionCost{Intervention: iv.ID, Cost: cost})
	}

	// -------------------------------------------------------------------------
	// Benefits: effect magnitudes at the horizon x annual monetary
	// coefficients x present value of the benefit stream.
	// -------------------------------------------------------------------------
	npv := healthecon.AnnuityFactor(v.DiscountRate, horizonYears)

	var savings, gains float64
	effects := v.Composer.EffectsAt(levels, synergies, horizon)
	for id, composed := range effects {
		mag := composed
		if mag < 0 {
			mag = -mag
		}
		if coef, ok := v.healthcareCoef[id]; ok {
			savings += mag * coef * npv
		}
		if coef, ok := v.productivityCoef[id]; ok {
			gains += mag * coef * npv
		}
	}

	// -------------------------------------------------------------------------
	// QALYs off the life-expectancy effect.
	// -------------------------------------------------------------------------
	qaly := 0.0
	if le, ok := c.Outcome("life_expectancy"); ok {
		mag := effects["life_expectancy"]
		if mag < 0 {
			mag = -mag
		}
		qaly = mag * le.Baseline * affectedFraction * v.Population * utilityWeight
	}

	benefits := savings + gains
	roi := 0.0
	if totalCost > 0 {
		roi = (benefits - totalCost) / totalCost * 100
	}

	return EconomicImpact{
		TotalCost:         totalCost,
		HealthcareSavings: savings,
		ProductivityGains: gains,
		QALYGained:        qaly,
		ROI:               roi,
		NetBenefit:        benefits - totalCost,
		CostBreakdown:     breakdown,
	}
}
