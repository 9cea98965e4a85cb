package causal

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// =============================================================================
// INSTRUMENTAL VARIABLES
// =============================================================================

// IVObservation is one unit in an instrumental-variable sample.
type IVObservation struct {
	Instrument float64
	Treatment  float64
	Outcome    float64
}

// TwoStageLeastSquares estimates the treatment effect with 2SLS: regress
// treatment on the instrument, then outcome on the fitted treatment. The
// second-stage standard error is inflated by the first-stage correlation, so
// a weak instrument widens the interval instead of hiding behind it.
func TwoStageLeastSquares(data []IVObservation) (Estimate, error) {
	if len(data) < 3 {
		return Estimate{}, fmt.Errorf("two-stage least squares needs at least 3 observations, got %d", len(data))
	}

	z := make([]float64, len(data))
	d := make([]float64, len(data))
	y := make([]float64, len(data))
	for i, o := range data {
		z[i] = o.Instrument
		d[i] = o.Treatment
		y[i] = o.Outcome
	}

	// First stage: treatment on instrument.
	alpha0, alpha1 := stat.LinearRegression(z, d, nil, false)
	if alpha1 == 0 {
		return Estimate{}, fmt.Errorf("instrument has no first-stage relationship with treatment")
	}
	fitted := make([]float64, len(data))
	for i := range z {
		fitted[i] = alpha0 + alpha1*z[i]
	}

	// Second stage: outcome on fitted treatment.
	beta0, beta1 := stat.LinearRegression(fitted, y, nil, false)

	// Residual-based slope standard error.
	n := float64(len(data))
	var rss float64
	for i := range fitted {
		resid := y[i] - (beta0 + beta1*fitted[i])
		rss += resid * resid
	}
	varFitted := stat.Variance(fitted, nil)
	if varFitted == 0 {
		return Estimate{}, fmt.Errorf("fitted treatment is constant, cannot estimate second stage")
	}
	se := math.Sqrt(rss / (n - 2) / (n * varFitted))

	// Inflate by the first-stage strength.
	firstStageCorr := stat.Correlation(z, d, nil)
	if c := math.Abs(firstStageCorr); c > 0 {
		se /= c
	}
	return finish(beta1, se, len(data)), nil
}
