package causal

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// =============================================================================
// SYNTHETIC CONTROL
// =============================================================================

// Donor is one untreated unit contributing to the synthetic control. Pre and
// Post must align period-for-period with the treated unit's series.
type Donor struct {
	Name string
	Pre  []float64
	Post []float64
}

// SyntheticResult is a synthetic-control estimate plus the donor weights
// that built the counterfactual.
type SyntheticResult struct {
	Estimate Estimate
	Weights  map[string]float64
}

// SyntheticControl builds a counterfactual for the treated unit as a donor
// combination weighted by inverse pre-period MSE, then averages the
// post-period gap between observed and synthetic into the effect. A donor
// matching the pre-period exactly takes all the weight.
func SyntheticControl(treatedPre, treatedPost []float64, donors []Donor) (SyntheticResult, error) {
	if len(treatedPre) == 0 || len(treatedPost) == 0 {
		return SyntheticResult{}, fmt.Errorf("treated unit needs both pre and post periods")
	}
	if len(donors) == 0 {
		return SyntheticResult{}, fmt.Errorf("synthetic control needs at least one donor")
	}

	for _, d := range donors {
		if len(d.Pre) != len(treatedPre) || len(d.Post) != len(treatedPost) {
			return SyntheticResult{}, fmt.Errorf("donor %q period lengths do not match treated unit", d.Name)
		}
	}

	raw := make([]float64, len(donors))
	var total float64
	var exact *int
	for i, d := range donors {
		mse := preMSE(treatedPre, d.Pre)
		if mse == 0 {
			j := i
			exact = &j
			break
		}
		raw[i] = 1 / mse
		total += raw[i]
	}

	weights := make(map[string]float64, len(donors))
	if exact != nil {
		for i, d := range donors {
			if i == *exact {
				weights[d.Name] = 1
			} else {
				weights[d.Name] = 0
			}
		}
	} else {
		for i, d := range donors {
			weights[d.Name] = raw[i] / total
		}
	}

	// Post-period gap between observed and synthetic.
	gaps := make([]float64, len(treatedPost))
	for t := range treatedPost {
		var synthetic float64
		for _, d := range donors {
			synthetic += weights[d.Name] * d.Post[t]
		}
		gaps[t] = treatedPost[t] - synthetic
	}

	ate := stat.Mean(gaps, nil)
	var se float64
	if len(gaps) > 1 {
		se = math.Sqrt(stat.Variance(gaps, nil) / float64(len(gaps)))
	}
	return SyntheticResult{
		Estimate: finish(ate, se, len(treatedPre)+len(treatedPost)),
		Weights:  weights,
	}, nil
}

func preMSE(treated, donor []float64) float64 {
	var sum float64
	for i := range treated {
		diff := treated[i] - donor[i]
		sum += diff * diff
	}
	return sum / float64(len(treated))
}
