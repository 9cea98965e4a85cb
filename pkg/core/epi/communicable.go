// Package epi implements three independent compartmental disease models:
// a communicable-disease model with treatment, a seasonal vector-borne model,
// and a chronic-disease multi-state Markov chain. Each is steppable year by
// year and perturbable by intervention parameters. Interventions rescale
// rate parameters permanently; they never act as per-step forces.
package epi

// treatedMortalityFactor: treatment cuts case mortality by roughly 90%.
const treatedMortalityFactor = 0.10

// =============================================================================
// COMMUNICABLE DISEASE (S / I / T / D)
// =============================================================================

// CommunicableModel tracks a treatable communicable disease. Compartments are
// person counts; rates are annual.
type CommunicableModel struct {
	Susceptible float64
	Infected    float64
	Treated     float64
	Dead        float64

	Beta              float64 // Base transmission rate
	TreatmentRate     float64 // Annual share of infected starting treatment
	TreatmentEfficacy float64 // How strongly coverage suppresses transmission
	MortalityRate     float64 // Annual untreated case mortality
}

// NewCommunicableModel seeds the model with a population and an initial
// infected share.
func NewCommunicableModel(population, initialInfectedShare float64) *CommunicableModel {
	infected := population * initialInfectedShare
	return &CommunicableModel{
		Susceptible:       population - infected,
		Infected:          infected,
		Beta:              0.35,
		TreatmentRate:     0.40,
		TreatmentEfficacy: 0.75,
		MortalityRate:     0.08,
	}
}

// CommunicableIntervention rescales the model's rate parameters.
type CommunicableIntervention struct {
	BetaReduction      float64 // Fractional cut to transmission
	TreatmentIncrease  float64 // Fractional boost to treatment starts
	MortalityReduction float64 // Fractional cut to case mortality
}

// ApplyIntervention permanently rescales the rate parameters.
func (m *CommunicableModel) ApplyIntervention(iv CommunicableIntervention) {
	m.Beta *= (1 - clamp01(iv.BetaReduction))
	m.TreatmentRate *= (1 + iv.TreatmentIncrease)
	m.MortalityRate *= (1 - clamp01(iv.MortalityReduction))
}

// StepYear advances the model one year. Treatment coverage among active cases
// suppresses effective transmission; deaths split between the untreated pool
// (full mortality) and the treated pool (~90% reduction).
func (m *CommunicableModel) StepYear() {
	n := m.Susceptible + m.Infected + m.Treated
	if n <= 0 {
		return
	}

	coverage := 0.0
	if cases := m.Infected + m.Treated; cases > 0 {
		coverage = m.Treated / cases
	}
	effectiveBeta := m.Beta * (1 - coverage*m.TreatmentEfficacy)

	newInfections := effectiveBeta * m.Susceptible * m.Infected / n
	newTreatmentStarts := m.TreatmentRate * m.Infected
	deathsUntreated := m.MortalityRate * m.Infected
	deathsTreated := m.MortalityRate * treatedMortalityFactor * m.Treated

	m.Susceptible -= newInfections
	m.Infected += newInfections - newTreatmentStarts - deathsUntreated
	m.Treated += newTreatmentStarts - deathsTreated
	m.Dead += deathsUntreated + deathsTreated

	m.clampNonNegative()
}

// Population returns the living population.
func (m *CommunicableModel) Population() float64 {
	return m.Susceptible + m.Infected + m.Treated
}

func (m *CommunicableModel) clampNonNegative() {
	m.Susceptible = clampFloor(m.Susceptible)
	m.Infected = clampFloor(m.Infected)
	m.Treated = clampFloor(m.Treated)
	m.Dead = clampFloor(m.Dead)
}

func clampFloor(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
