package epi

// =============================================================================
// CHRONIC DISEASE (multi-state Markov)
// =============================================================================

// ChronicModel tracks a chronic disease through a fixed-transition Markov
// chain: Healthy -> AtRisk -> Undiagnosed -> Diagnosed -> {Controlled,
// Complications} -> Dead. Transition probabilities are annual.
type ChronicModel struct {
	Healthy       float64
	AtRisk        float64
	Undiagnosed   float64
	Diagnosed     float64
	Controlled    float64
	Complications float64
	Dead          float64

	RiskOnsetRate    float64 // Healthy -> AtRisk
	ProgressionRate  float64 // AtRisk -> Undiagnosed
	DiagnosisRate    float64 // Undiagnosed -> Diagnosed
	ControlRate      float64 // Diagnosed -> Controlled
	ComplicationRate float64 // Diagnosed -> Complications
	LapseRate        float64 // Controlled -> Complications
	MortalityRate    float64 // Complications -> Dead
}

// NewChronicModel seeds the chain with a population split across the early
// states.
func NewChronicModel(population float64) *ChronicModel {
	return &ChronicModel{
		Healthy:          population * 0.70,
		AtRisk:           population * 0.18,
		Undiagnosed:      population * 0.06,
		Diagnosed:        population * 0.03,
		Controlled:       population * 0.02,
		Complications:    population * 0.01,
		RiskOnsetRate:    0.03,
		ProgressionRate:  0.12,
		DiagnosisRate:    0.25,
		ControlRate:      0.45,
		ComplicationRate: 0.15,
		LapseRate:        0.04,
		MortalityRate:    0.10,
	}
}

// ChronicIntervention rescales the chain's transition rates.
type ChronicIntervention struct {
	ScreeningBoost      float64 // Raises diagnosis
	ControlImprovement  float64 // Raises control among diagnosed
	PreventionStrength  float64 // Cuts onset and progression
	TreatmentAccessGain float64 // Cuts complications
}

// ApplyIntervention permanently rescales the transition rates.
func (m *ChronicModel) ApplyIntervention(iv ChronicIntervention) {
	m.DiagnosisRate *= (1 + iv.ScreeningBoost)
	m.ControlRate *= (1 + iv.ControlImprovement)
	m.RiskOnsetRate *= (1 - clamp01(iv.PreventionStrength))
	m.ProgressionRate *= (1 - clamp01(iv.PreventionStrength))
	m.ComplicationRate *= (1 - clamp01(iv.TreatmentAccessGain))
	m.LapseRate *= (1 - clamp01(iv.TreatmentAccessGain))
}

// StepYear applies one year of transitions. Flows are computed off the
// start-of-year stocks, then applied together.
func (m *ChronicModel) StepYear() {
	onset := m.RiskOnsetRate * m.Healthy
	progression := m.ProgressionRate * m.AtRisk
	diagnoses := m.DiagnosisRate * m.Undiagnosed
	controlled := m.ControlRate * m.Diagnosed
	complicationsNew := m.ComplicationRate * m.Diagnosed
	lapses := m.LapseRate * m.Controlled
	deaths := m.MortalityRate * m.Complications

	m.Healthy -= onset
	m.AtRisk += onset - progression
	m.Undiagnosed += progression - diagnoses
	m.Diagnosed += diagnoses - controlled - complicationsNew
	m.Controlled += controlled - lapses
	m.Complications += complicationsNew + lapses - deaths
	m.Dead += deaths

	m.clampNonNegative()
}

// Population returns the living population.
func (m *ChronicModel) Population() float64 {
	return m.Healthy + m.AtRisk + m.Undiagnosed + m.Diagnosed + m.Controlled + m.Complications
}

func (m *ChronicModel) clampNonNegative() {
	m.Healthy = clampFloor(m.Healthy)
	m.AtRisk = clampFloor(m.AtRisk)
	m.Undiagnosed = clampFloor(m.Undiagnosed)
	m.Diagnosed = clampFloor(m.Diagnosed)
	m.Controlled = clampFloor(m.Controlled)
	m.Complications = clampFloor(m.Complications)
	m.Dead = clampFloor(m.Dead)
}
