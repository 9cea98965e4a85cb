package epi

import "math"

// =============================================================================
// VECTOR-BORNE DISEASE (S / E / I / R / D, weekly substeps, seasonal forcing)
// =============================================================================

const weeksPerYear = 52

// VectorBorneModel tracks a seasonal vector-borne disease. The year advances
// through 52 weekly substeps with a cosine transmission multiplier peaking at
// PeakMonth; at year end a share of the recovered pool loses immunity.
type VectorBorneModel struct {
	Susceptible float64
	Exposed     float64
	Infected    float64
	Recovered   float64 // Partial immunity
	Dead        float64

	Beta              float64 // Annual base transmission rate
	IncubationRate    float64 // Annual E -> I
	RecoveryRate      float64 // Annual I -> R
	MortalityRate     float64 // Annual case mortality
	TreatmentRate     float64 // Annual treatment initiation among infected
	SeasonalAmplitude float64 // Strength of the seasonal swing, [0,1)
	PeakMonth         float64 // 0 = January
	WaningFraction    float64 // Share of R returning to S each year end
	TreatedThisYear   float64 // Annual counter, reset at year end
}

// NewVectorBorneModel seeds the model with a population and initial infections.
func NewVectorBorneModel(population, initialInfectedShare float64) *VectorBorneModel {
	infected := population * initialInfectedShare
	return &VectorBorneModel{
		Susceptible:       population - infected,
		Infected:          infected,
		Beta:              4.5,
		IncubationRate:    26.0, // ~2-week incubation
		RecoveryRate:      17.0, // ~3-week infectious period
		MortalityRate:     0.015,
		TreatmentRate:     0.30,
		SeasonalAmplitude: 0.6,
		PeakMonth:         7, // August wet season
		WaningFraction:    0.25,
	}
}

// VectorBorneIntervention rescales the model's rate parameters.
type VectorBorneIntervention struct {
	BetaReduction      float64 // Vector control
	MortalityReduction float64 // Treatment quality
	TreatmentIncrease  float64 // Treatment initiation reach
}

// ApplyIntervention permanently rescales the rate parameters.
func (m *VectorBorneModel) ApplyIntervention(iv VectorBorneIntervention) {
	m.Beta *= (1 - clamp01(iv.BetaReduction))
	m.MortalityRate *= (1 - clamp01(iv.MortalityReduction))
	m.TreatmentRate *= (1 + iv.TreatmentIncrease)
}

// seasonalMultiplier is the cosine forcing for a given week, peaking at
// PeakMonth.
func (m *VectorBorneModel) seasonalMultiplier(week int) float64 {
	month := float64(week) * 12.0 / weeksPerYear
	return 1 + m.SeasonalAmplitude*math.Cos(2*math.Pi*(month-m.PeakMonth)/12.0)
}

// StepYear advances the model through 52 weekly substeps, then applies the
// year-end immunity reset: a fraction of Recovered returns to Susceptible and
// the annual treatment counter zeroes.
func (m *VectorBorneModel) StepYear() {
	const dt = 1.0 / weeksPerYear
	for week := 0; week < weeksPerYear; week++ {
		n := m.Susceptible + m.Exposed + m.Infected + m.Recovered
		if n <= 0 {
			break
		}

		newExposed := m.Beta * m.seasonalMultiplier(week) * m.Susceptible * m.Infected / n * dt
		newInfectious := m.IncubationRate * m.Exposed * dt
		newRecovered := m.RecoveryRate * m.Infected * dt
		newDeaths := m.MortalityRate * m.Infected * dt
		m.TreatedThisYear += m.TreatmentRate * m.Infected * dt

		m.Susceptible -= newExposed
		m.Exposed += newExposed - newInfectious
		m.Infected += newInfectious - newRecovered - newDeaths
		m.Recovered += newRecovered
		m.Dead += newDeaths

		m.clampNonNegative()
	}

	// Waning immunity.
	waned := m.Recovered * m.WaningFraction
	m.Recovered -= waned
	m.Susceptible += waned
	m.TreatedThisYear = 0
}

// Population returns the living population.
func (m *VectorBorneModel) Population() float64 {
	return m.Susceptible + m.Exposed + m.Infected + m.Recovered
}

func (m *VectorBorneModel) clampNonNegative() {
	m.Susceptible = clampFloor(m.Susceptible)
	m.Exposed = clampFloor(m.Exposed)
	m.Infected = clampFloor(m.Infected)
	m.Recovered = clampFloor(m.Recovered)
	m.Dead = clampFloor(m.Dead)
}
