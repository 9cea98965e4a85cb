package causal

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// =============================================================================
// AVERAGE TREATMENT EFFECT
// =============================================================================

// minGroupSize is the smallest treated or control arm an estimator accepts.
const minGroupSize = 2

// DifferenceInMeans estimates the ATE as the difference between the mean
// treated and mean control outcome, with a Welch-style pooled standard error.
func DifferenceInMeans(obs []Observation) (Estimate, error) {
	treated, control := split(obs)
	if len(treated) < minGroupSize || len(control) < minGroupSize {
		return Estimate{}, fmt.Errorf("difference in means needs at least %d treated and %d control, got %d/%d",
			minGroupSize, minGroupSize, len(treated), len(control))
	}

	ate := stat.Mean(treated, nil) - stat.Mean(control, nil)
	se := math.Sqrt(stat.Variance(treated, nil)/float64(len(treated)) +
		stat.Variance(control, nil)/float64(len(control)))
	return finish(ate, se, len(obs)), nil
}

// InverseProbabilityWeighted estimates the ATE using supplied propensity
// scores. Every observation must carry a propensity strictly inside (0,1).
func InverseProbabilityWeighted(obs []Observation) (Estimate, error) {
	treated, control := split(obs)
	if len(treated) < minGroupSize || len(control) < minGroupSize {
		return Estimate{}, fmt.Errorf("inverse probability weighting needs at least %d treated and %d control, got %d/%d",
			minGroupSize, minGroupSize, len(treated), len(control))
	}

	// Per-observation influence terms: T*Y/e - (1-T)*Y/(1-e).
	terms := make([]float64, 0, len(obs))
	for i, o := range obs {
		if o.Propensity <= 0 || o.Propensity >= 1 {
			return Estimate{}, fmt.Errorf("observation %d: propensity %f outside (0,1)", i, o.Propensity)
		}
		if o.Treated {
			terms = append(terms, o.Outcome/o.Propensity)
		} else {
			terms = append(terms, -o.Outcome/(1-o.Propensity))
		}
	}

	ate := stat.Mean(terms, nil)
	se := math.Sqrt(stat.Variance(terms, nil) / float64(len(terms)))
	return finish(ate, se, len(obs)), nil
}

// SubgroupEstimate is a conditional ATE for one labeled subgroup.
type SubgroupEstimate struct {
	Subgroup string
	Estimate Estimate
}

// ConditionalATE partitions the sample by subgroup label and runs the
// difference-in-means estimator per subgroup. Subgroups with fewer than two
// treated or two control observations are skipped, not errored. Results are
// sorted by subgroup name.
func ConditionalATE(obs []Observation) []SubgroupEstimate {
	groups := make(map[string][]Observation)
	for _, o := range obs {
		groups[o.Subgroup] = append(groups[o.Subgroup], o)
	}

	out := make([]SubgroupEstimate, 0, len(groups))
	for name, group := range groups {
		est, err := DifferenceInMeans(group)
		if err != nil {
			continue
		}
		out = append(out, SubgroupEstimate{Subgroup: name, Estimate: est})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Subgroup < out[j].Subgroup })
	return out
}
