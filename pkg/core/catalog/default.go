package catalog

// =============================================================================
// DEFAULT NATIONAL CATALOG
// =============================================================================

// Default builds the standard national catalog. Kept as an explicit constructor
// rather than package state so tests can build alternates alongside it.
func Default() (*Catalog, error) {
	return New(defaultInterventions(), DefaultOutcomes(), DefaultProvinces())
}

// MustDefault is Default for wiring paths where the built-in data is known good.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic("catalog: default catalog invalid: " + err.Error())
	}
	return c
}

// DefaultOutcomes returns the tracked health and economic metrics.
func DefaultOutcomes() []Outcome {
	return []Outcome{
		{ID: "obesity", Label: "Adult Obesity", Baseline: 28.5, Unit: "%", Polarity: LowerIsBetter},
		{ID: "diabetes", Label: "Type 2 Diabetes Prevalence", Baseline: 11.2, Unit: "%", Polarity: LowerIsBetter},
		{ID: "cardiovascular", Label: "Cardiovascular Disease", Baseline: 9.8, Unit: "%", Polarity: LowerIsBetter},
		{ID: "smoking", Label: "Smoking Rate", Baseline: 19.4, Unit: "%", Polarity: LowerIsBetter},
		{ID: "infectious", Label: "Infectious Disease Incidence", Baseline: 14.6, Unit: "per 1000", Polarity: LowerIsBetter},
		{ID: "infant_mortality", Label: "Infant Mortality", Baseline: 12.1, Unit: "per 1000 births", Polarity: LowerIsBetter},
		{ID: "life_expectancy", Label: "Life Expectancy", Baseline: 74.8, Unit: "years", Polarity: HigherIsBetter},
		{ID: "healthy_years", Label: "Healthy Life Years", Baseline: 64.2, Unit: "years", Polarity: HigherIsBetter},
		{ID: "productivity", Label: "Workforce Productivity Index", Baseline: 100.0, Unit: "index", Polarity: HigherIsBetter},
		{ID: "healthcare_costs", Label: "Per-Capita Healthcare Spend", Baseline: 1450.0, Unit: "$/yr", Polarity: LowerIsBetter},
	}
}

// DefaultProvinces returns the provinces with their fixed delivery multipliers.
func DefaultProvinces() []Province {
	return []Province{
		{ID: "capital", Label: "Capital Region", Population: 8.2e6, Urban: 1.20, Digital: 1.25, Screening: 1.15},
		{ID: "coastal", Label: "Coastal Province", Population: 5.6e6, Urban: 1.05, Digital: 1.00, Screening: 1.00},
		{ID: "highlands", Label: "Highlands", Population: 3.1e6, Urban: 0.80, Digital: 0.70, Screening: 0.75},
		{ID: "northern", Label: "Northern Province", Population: 4.4e6, Urban: 0.90, Digital: 0.85, Screening: 0.90},
		{ID: "delta", Label: "River Delta", Population: 6.9e6, Urban: 0.95, Digital: 0.90, Screening: 1.05},
		{ID: "islands", Label: "Outer Islands", Population: 1.3e6, Urban: 0.65, Digital: 0.55, Screening: 0.60},
	}
}

func defaultInterventions() []Intervention {
	return []Intervention{
		{
			ID: "sugar_tax", Label: "Sugar-Sweetened Beverage Tax", Category: "fiscal",
			Min: 0, Max: 50, Baseline: 0, Step: 5,
			CostPerUnit: -2.4, // Revenue per unit of tax rate
			Scaling:     ScalingLinear,
			Synergies: []SynergyEdge{
				{Partner: "school_nutrition", Multiplier: 1.25, Description: "Price signal reinforced by school food standards"},
			},
			Impacts: []ImpactRecord{
				{Outcome: "obesity", BaseEffect: -0.12, DiminishingThreshold: 30,
					DemographicWeights: map[string]float64{"youth": 1.4, "adult": 1.0, "senior": 0.6}},
				{Outcome: "diabetes", BaseEffect: -0.08, DiminishingThreshold: 30},
				{Outcome: "healthcare_costs", BaseEffect: -0.04, DiminishingThreshold: 35},
			},
			Timing: Timing{ImplementationDelay: 1, RampUpPeriod: 2},
		},
		{
			ID: "tobacco_tax", Label: "Tobacco Excise Increase", Category: "fiscal",
			Min: 0, Max: 100, Baseline: 20, Step: 10,
			CostPerUnit: -1.8,
			Scaling:     ScalingLinear,
			Impacts: []ImpactRecord{
				{Outcome: "smoking", BaseEffect: -0.18, DiminishingThreshold: 60,
					DemographicWeights: map[string]float64{"youth": 1.6, "adult": 1.0, "senior": 0.5}},
				{Outcome: "cardiovascular", BaseEffect: -0.07, DiminishingThreshold: 70},
				{Outcome: "life_expectancy", BaseEffect: 0.015, DiminishingThreshold: 70},
			},
			Timing: Timing{ImplementationDelay: 0, RampUpPeriod: 3},
		},
		{
			ID: "screening_program", Label: "National Screening Coverage", Category: "clinical",
			Min: 10, Max: 90, Baseline: 35, Step: 5,
			CostPerUnit: 4.2,
			Scaling:     ScalingSigmoid,
			Synergies: []SynergyEdge{
				{Partner: "rural_clinics", Multiplier: 1.30, Description: "Clinics extend screening into underserved districts"},
				{Partner: "telemedicine", Multiplier: 1.15, Description: "Remote follow-up raises screening completion"},
			},
			Impacts: []ImpactRecord{
				{Outcome: "diabetes", BaseEffect: -0.10, DiminishingThreshold: 70},
				{Outcome: "cardiovascular", BaseEffect: -0.09, DiminishingThreshold: 70},
				{Outcome: "healthy_years", BaseEffect: 0.03, DiminishingThreshold: 75},
			},
			Timing: Timing{ImplementationDelay: 1, RampUpPeriod: 4},
		},
		{
			ID: "rural_clinics", Label: "Rural Clinic Density", Category: "infrastructure",
			Min: 0.5, Max: 5.0, Baseline: 1.2, Step: 0.1,
			CostPerUnit: 85.0, // Per clinic per 100k population
			Scaling:     ScalingLogarithmic,
			Impacts: []ImpactRecord{
				{Outcome: "infant_mortality", BaseEffect: -0.15, DiminishingThreshold: 3.5,
					DemographicWeights: map[string]float64{"rural": 1.8, "urban": 0.3}},
				{Outcome: "infectious", BaseEffect: -0.08, DiminishingThreshold: 4.0},
				{Outcome: "life_expectancy", BaseEffect: 0.02, DiminishingThreshold: 4.0},
			},
			Timing: Timing{ImplementationDelay: 2, RampUpPeriod: 5},
		},
		{
			ID: "vaccination", Label: "Vaccination Campaign Coverage", Category: "preventive",
			Min: 40, Max: 98, Baseline: 68, Step: 2,
			CostPerUnit: 1.6,
			Scaling:     ScalingSigmoid,
			Synergies: []SynergyEdge{
				{Partner: "rural_clinics", Multiplier: 1.20, Description: "Cold-chain reach through clinic network"},
			},
			Impacts: []ImpactRecord{
				{Outcome: "infectious", BaseEffect: -0.22, DiminishingThreshold: 90,
					DemographicWeights: map[string]float64{"youth": 1.5, "adult": 0.8, "senior": 1.2}},
				{Outcome: "infant_mortality", BaseEffect: -0.10, DiminishingThreshold: 92},
			},
			Timing: Timing{ImplementationDelay: 0, RampUpPeriod: 2},
		},
		{
			ID: "telemedicine", Label: "Telemedicine Rollout", Category: "digital",
			Min: 0, Max: 80, Baseline: 5, Step: 5,
			CostPerUnit: 2.1,
			Scaling:     ScalingSigmoid,
			Prerequisites: []string{"rural_clinics"},
			Impacts: []ImpactRecord{
				{Outcome: "healthcare_costs", BaseEffect: -0.09, DiminishingThreshold: 55,
					DemographicWeights: map[string]float64{"rural": 1.6, "urban": 0.9}},
				{Outcome: "healthy_years", BaseEffect: 0.02, DiminishingThreshold: 60},
			},
			Timing: Timing{ImplementationDelay: 1, RampUpPeriod: 3},
		},
		{
			ID: "school_nutrition", Label: "School Nutrition Standards", Category: "preventive",
			Min: 0, Max: 100, Baseline: 15, Step: 5,
			CostPerUnit: 0.9,
			Scaling:     ScalingLinear,
			Impacts: []ImpactRecord{
				{Outcome: "obesity", BaseEffect: -0.09, DiminishingThreshold: 75,
					DemographicWeights: map[string]float64{"youth": 2.0}},
				{Outcome: "productivity", BaseEffect: 0.02, DiminishingThreshold: 80},
			},
			Timing: Timing{ImplementationDelay: 1, RampUpPeriod: 3},
		},
		{
			ID: "clean_water", Label: "Clean Water Access", Category: "infrastructure",
			Min: 55, Max: 100, Baseline: 72, Step: 1,
			CostPerUnit: 6.5,
			Scaling:     ScalingLogarithmic,
			Impacts: []ImpactRecord{
				{Outcome: "infectious", BaseEffect: -0.20, DiminishingThreshold: 92,
					DemographicWeights: map[string]float64{"rural": 1.7, "urban": 0.6}},
				{Outcome: "infant_mortality", BaseEffect: -0.12, DiminishingThreshold: 94},
				{Outcome: "productivity", BaseEffect: 0.03, DiminishingThreshold: 95},
			},
			Timing: Timing{ImplementationDelay: 2, RampUpPeriod: 6},
		},
	}
}
