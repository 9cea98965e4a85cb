// Package catalog defines the static intervention catalog: which policy levers
// exist, what they cost, which health outcomes they move, and how they interact.
// The catalog carries no logic beyond load-time validation; the effect, trajectory
// and economics packages consume it read-only.
package catalog

// =============================================================================
// SCALING & POLARITY TAGS
// =============================================================================

// ScalingFunc tags how an intervention's raw level maps onto realized intensity.
type ScalingFunc string

const (
	ScalingLinear      ScalingFunc = "linear"
	ScalingLogarithmic ScalingFunc = "logarithmic"
	ScalingSigmoid     ScalingFunc = "sigmoid"
)

// Polarity indicates whether a larger outcome value is good or bad.
type Polarity string

const (
	HigherIsBetter Polarity = "higher_is_better"
	LowerIsBetter  Polarity = "lower_is_better"
)

// =============================================================================
// OUTCOME
// =============================================================================

// Outcome is an enumerated health or economic metric with its national baseline.
type Outcome struct {
	ID       string   `yaml:"id"`
	Label    string   `yaml:"label"`
	Baseline float64  `yaml:"baseline"` // National baseline value (e.g. % prevalence, years)
	Unit     string   `yaml:"unit"`     // "%", "years", "per 1000"
	Polarity Polarity `yaml:"polarity"`
}

// =============================================================================
// INTERVENTION
// =============================================================================

// SynergyEdge declares a multiplicative boost when this intervention and the
// partner are both active above baseline.
type SynergyEdge struct {
	Partner     string  `yaml:"partner"`
	Multiplier  float64 `yaml:"multiplier"` // >= 1
	Description string  `yaml:"description"`
}

// ImpactRecord declares the fractional effect of an intervention on one outcome
// at full normalized intensity.
type ImpactRecord struct {
	Outcome              string             `yaml:"outcome"`
	BaseEffect           float64            `yaml:"base_effect"`           // Fraction at full intensity; sign follows the outcome direction
	DiminishingThreshold float64            `yaml:"diminishing_threshold"` // Level above which marginal benefit saturates
	DemographicWeights   map[string]float64 `yaml:"demographic_weights,omitempty"`
}

// Timing models rollout lag and gradual uptake.
type Timing struct {
	ImplementationDelay float64 `yaml:"implementation_delay"` // Years before any effect
	RampUpPeriod        float64 `yaml:"ramp_up_period"`       // Years from first effect to full adoption
}

// Intervention is a single policy lever with its numeric range and declared
// effects. CostPerUnit may be negative: taxes raise revenue.
type Intervention struct {
	ID            string         `yaml:"id"`
	Label         string         `yaml:"label"`
	Category      string         `yaml:"category"`
	Min           float64        `yaml:"min"`
	Max           float64        `yaml:"max"`
	Baseline      float64        `yaml:"baseline"`
	Step          float64        `yaml:"step"`
	CostPerUnit   float64        `yaml:"cost_per_unit"`
	Scaling       ScalingFunc    `yaml:"scaling"`
	Prerequisites []string       `yaml:"prerequisites,omitempty"`
	Synergies     []SynergyEdge  `yaml:"synergies,omitempty"`
	Impacts       []ImpactRecord `yaml:"impacts"`
	Timing        Timing         `yaml:"timing"`
}

// Range returns the width of the intervention's level range.
func (iv *Intervention) Range() float64 {
	return iv.Max - iv.Min
}

// NormalizedDelta maps a level's distance from baseline onto [-1, 1].
// Levels outside [Min, Max] are clamped first.
func (iv *Intervention) NormalizedDelta(level float64) float64 {
	level = iv.Clamp(level)
	return (level - iv.Baseline) / iv.Range()
}

// Clamp forces a level into the declared [Min, Max] range.
func (iv *Intervention) Clamp(level float64) float64 {
	if level < iv.Min {
		return iv.Min
	}
	if level > iv.Max {
		return iv.Max
	}
	return level
}

// =============================================================================
// PROVINCE
// =============================================================================

// Province carries the fixed effectiveness multipliers used to localize the
// aggregate composed effect. The three channels reflect how urbanization,
// digital infrastructure and screening reach modulate policy delivery.
type Province struct {
	ID         string  `yaml:"id"`
	Label      string  `yaml:"label"`
	Population float64 `yaml:"population"`
	Urban      float64 `yaml:"urban"`     // Urban delivery multiplier
	Digital    float64 `yaml:"digital"`   // Digital-infrastructure multiplier
	Screening  float64 `yaml:"screening"` // Screening-reach multiplier
}

// EffectScalar averages the three channel multipliers into the single scalar
// applied after aggregate effect composition.
func (p *Province) EffectScalar() float64 {
	return (p.Urban + p.Digital + p.Screening) / 3.0
}
