// Package causal is an offline toolkit for estimating treatment effects from
// external sample data. It is used to calibrate catalog effect sizes and is
// never on the interactive simulation path.
package causal

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// zCritical95 is the two-sided normal critical value for a 95% interval.
const zCritical95 = 1.959963984540054

// Observation is one unit in a treatment/control sample. Propensity is
// optional and only consulted by the inverse-probability estimator.
type Observation struct {
	Treated    bool
	Outcome    float64
	Propensity float64
	Subgroup   string
}

// Estimate is an average-treatment-effect estimate with its uncertainty.
// Immutable once computed from a fixed sample.
type Estimate struct {
	ATE        float64
	StdErr     float64
	CI95       [2]float64
	PValue     float64
	SampleSize int
}

// Contains reports whether v falls inside the 95% confidence interval.
func (e Estimate) Contains(v float64) bool {
	return v >= e.CI95[0] && v <= e.CI95[1]
}

// finish fills the derived fields of an estimate from its ATE and standard
// error. A zero standard error yields a degenerate interval and p-value 0
// for a nonzero effect, 1 otherwise.
func finish(ate, se float64, n int) Estimate {
	e := Estimate{ATE: ate, StdErr: se, SampleSize: n}
	e.CI95 = [2]float64{ate - zCritical95*se, ate + zCritical95*se}
	if se <= 0 {
		if ate != 0 {
			e.PValue = 0
		} else {
			e.PValue = 1
		}
		return e
	}
	z := ate / se
	if z < 0 {
		z = -z
	}
	std := distuv.Normal{Mu: 0, Sigma: 1}
	e.PValue = 2 * (1 - std.CDF(z))
	return e
}

// split partitions a sample into treated and control outcome slices.
func split(obs []Observation) (treated, control []float64) {
	for _, o := range obs {
		if o.Treated {
			treated = append(treated, o.Outcome)
		} else {
			control = append(control, o.Outcome)
		}
	}
	return treated, control
}
