// Package engine is the external interface of the simulator. It wires the
// catalog, synergy detection, effect composition, trajectory generation and
// economic valuation into a single Run call, and an enhanced path that adds
// the epidemiological projection and its disease-burden summary. Every call
// builds fresh state; nothing is shared between invocations.
package engine

import (
	"sort"

	"policysim/pkg/core/catalog"
	"policysim/pkg/core/economics"
	"policysim/pkg/core/effect"
	"policysim/pkg/core/epi"
	"policysim/pkg/core/healthecon"
	"policysim/pkg/core/trajectory"
)

// DefaultMaxHorizon caps user-driven projection loops.
const DefaultMaxHorizon = 50

// referenceYearsLostPerDeath feeds the enhanced path's YLL computation.
const referenceYearsLostPerDeath = 15.0

// Options configures an engine. Zero values fall back to the defaults used
// across the core packages.
type Options struct {
	Population   float64
	DiscountRate float64
	MaxHorizon   int
}

// Engine runs scenarios against one validated catalog.
type Engine struct {
	catalog   *catalog.Catalog
	composer  *effect.Composer
	generator *trajectory.Generator
	valuator  *economics.Valuator
	opts      Options
}

// New builds an engine around a validated catalog.
func New(c *catalog.Catalog, opts Options) *Engine {
	if opts.MaxHorizon <= 0 {
		opts.MaxHorizon = DefaultMaxHorizon
	}
	v := economics.NewValuator(c)
	if opts.Population > 0 {
		v.Population = opts.Population
	} else {
		opts.Population = v.Population
	}
	if opts.DiscountRate > 0 {
		v.DiscountRate = opts.DiscountRate
	} else {
		opts.DiscountRate = v.DiscountRate
	}
	return &Engine{
		catalog:   c,
		composer:  effect.NewComposer(c),
		generator: trajectory.NewGenerator(c),
		valuator:  v,
		opts:      opts,
	}
}

// HorizonDelta is one outcome's end-of-horizon change.
type HorizonDelta struct {
	Outcome  string
	Baseline float64 // Natural-drift value at the horizon
	Adjusted float64 // Intervention-adjusted value at the horizon
	Delta    float64 // Adjusted minus baseline
}

// Result is one scenario run. Levels holds the clamped inputs actually used.
type Result struct {
	Horizon        int
	Levels         map[string]float64
	Synergies      []effect.ActiveSynergy
	Trajectories   map[string][]trajectory.ProjectedOutcome
	HorizonDeltas  []HorizonDelta
	ProvinceDeltas []trajectory.ProvinceDelta
	Economic       economics.EconomicImpact
}

// Run simulates a scenario: intervention levels, a horizon in years, and
// optional per-province level overrides. Unknown intervention ids are
// dropped, levels are clamped to their catalog ranges, and the horizon is
// clamped to [1, MaxHorizon].
func (e *Engine) Run(levels map[string]float64, horizonYears int, provinceOverrides map[string]map[string]float64) Result {
	horizon := clampHorizon(horizonYears, e.opts.MaxHorizon)
	clamped := e.clampLevels(levels)

	synergies := effect.Detect(e.catalog, clamped)
	trajs := e.generator.ProjectAll(clamped, synergies, horizon)

	deltas := make([]HorizonDelta, 0, len(trajs))
	for id, series := range trajs {
		last := series[len(series)-1]
		deltas = append(deltas, HorizonDelta{
			Outcome:  id,
			Baseline: last.Baseline,
			Adjusted: last.WithIntervention,
			Delta:    last.WithIntervention - last.Baseline,
		})
	}
	sort.Slice(deltas, func(i, j int) bool { return deltas[i].Outcome < deltas[j].Outcome })

	return Result{
		Horizon:        horizon,
		Levels:         clamped,
		Synergies:      synergies,
		Trajectories:   trajs,
		HorizonDeltas:  deltas,
		ProvinceDeltas: e.generator.ProvinceDeltas(clamped, provinceOverrides, horizon),
		Economic:       e.valuator.Impact(clamped, synergies, horizon),
	}
}

// EnhancedResult extends a Result with the compartmental projection and its
// disease-burden summary.
type EnhancedResult struct {
	Result
	Epidemiology         epi.IntegratedResult
	Burden               healthecon.DALYResult
	LifeExpectancyChange float64 // Crude adjustment at the horizon, years
}

// RunEnhanced runs the standard scenario plus the integrated compartmental
// projection, with model interventions derived from the scenario levels.
func (e *Engine) RunEnhanced(levels map[string]float64, horizonYears int, provinceOverrides map[string]map[string]float64) EnhancedResult {
	res := e.Run(levels, horizonYears, provinceOverrides)
	proj := epi.RunIntegratedProjection(e.opts.Population, res.Horizon, e.epiIntervention(res.Levels))

	enhanced := EnhancedResult{Result: res, Epidemiology: proj}
	if n := len(proj.Years); n > 0 {
		last := proj.Years[n-1]
		// The burden series is already disability-weighted, so the DALY
		// morbidity term uses weight 1 on the weighted case count.
		enhanced.Burden = healthecon.CalculateDALY(healthecon.DALYInput{
			Deaths:            last.CumulativeDeaths,
			YearsLostPerDeath: referenceYearsLostPerDeath,
			DisabilityWeight:  1,
			PrevalentCases:    last.DisabilityBurden,
			AvgDurationYears:  float64(res.Horizon),
			DiscountRate:      e.opts.DiscountRate,
		})
		enhanced.LifeExpectancyChange = last.LifeExpectancyAdjust
	}
	return enhanced
}

// OutcomeComparison is one outcome's horizon-end difference between two
// scenarios.
type OutcomeComparison struct {
	Outcome    string
	DeltaA     float64
	DeltaB     float64
	Difference float64 // DeltaB minus DeltaA
}

// Compare runs two level sets over the same horizon and reports, per
// outcome, how their horizon-end deltas differ.
func (e *Engine) Compare(levelsA, levelsB map[string]float64, horizonYears int) []OutcomeComparison {
	a := e.Run(levelsA, horizonYears, nil)
	b := e.Run(levelsB, horizonYears, nil)

	byOutcome := make(map[string]float64, len(b.HorizonDeltas))
	for _, d := range b.HorizonDeltas {
		byOutcome[d.Outcome] = d.Delta
	}

	out := make([]OutcomeComparison, 0, len(a.HorizonDeltas))
	for _, d := range a.HorizonDeltas {
		out = append(out, OutcomeComparison{
			Outcome:    d.Outcome,
			DeltaA:     d.Delta,
			DeltaB:     byOutcome[d.Outcome],
			Difference: byOutcome[d.Outcome] - d.Delta,
		})
	}
	return out
}

// clampLevels keeps known interventions only, each clamped to its range.
func (e *Engine) clampLevels(levels map[string]float64) map[string]float64 {
	clamped := make(map[string]float64, len(levels))
	for id, level := range levels {
		iv, ok := e.catalog.Intervention(id)
		if !ok {
			continue
		}
		clamped[id] = iv.Clamp(level)
	}
	return clamped
}

func clampHorizon(h, max int) int {
	if h < 1 {
		return 1
	}
	if h > max {
		return max
	}
	return h
}
