package healthecon

import (
	"math"
	"sort"
)

// =============================================================================
// COST-EFFECTIVENESS ANALYSIS
// =============================================================================

// CEOption is one candidate strategy: total cost against total effect (QALYs).
type CEOption struct {
	Name   string
	Cost   float64
	Effect float64
}

// Classification buckets an ICER against WHO-style GDP-per-capita thresholds.
type Classification string

const (
	HighlyCostEffective Classification = "highly_cost_effective" // ICER < 1x GDP/capita
	CostEffective       Classification = "cost_effective"        // ICER < 3x GDP/capita
	NotCostEffective    Classification = "not_cost_effective"    // ICER >= 3x GDP/capita
)

// CEResult is one candidate annotated with its frontier status.
// Dominated candidates stay in the result set, flagged.
type CEResult struct {
	Option            CEOption
	ICER              float64 // vs the prior non-dominated point; +Inf on zero effect gain
	StronglyDominated bool    // A cheaper, more effective alternative exists
	ExtendedDominated bool    // Beaten by a blend of two frontier neighbors
	OnFrontier        bool
	Classification    Classification
}

// ICER returns the incremental cost-effectiveness ratio between a candidate
// and a comparator. A zero or negative effect gain with positive extra cost
// yields +Inf rather than a division error.
func ICER(costHigh, effectHigh, costLow, effectLow float64) float64 {
	dCost := costHigh - costLow
	dEffect := effectHigh - effectLow
	if dEffect <= 0 {
		if dCost <= 0 {
			return 0
		}
		return math.Inf(1)
	}
	return dCost / dEffect
}

// NMB is the net monetary benefit of an option at a willingness-to-pay.
func NMB(cost, effect, willingnessToPay float64) float64 {
	return effect*willingnessToPay - cost
}

// RunCEA sorts candidates by cost, flags strong and extended dominance, and
// computes ICERs along the efficient frontier. gdpPerCapita anchors the
// cost-effectiveness classification thresholds.
func RunCEA(options []CEOption, gdpPerCapita float64) []CEResult {
	results := make([]CEResult, len(options))
	for i, o := range options {
		results[i] = CEResult{Option: o}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Option.Cost < results[j].Option.Cost
	})

	// Strong dominance: some other candidate is at least as cheap and at
	// least as effective, strictly better on one axis.
	for i := range results {
		for j := range results {
			if i == j {
				continue
			}
			a, b := results[i].Option, results[j].Option
			if b.Cost <= a.Cost && b.Effect >= a.Effect && (b.Cost < a.Cost || b.Effect > a.Effect) {
				results[i].StronglyDominated = true
				break
			}
		}
	}

	// Extended dominance: along the cost-sorted non-dominated chain, ICERs
	// must be increasing. A point whose ICER exceeds the next point's is
	// beaten by the interpolated segment between its neighbors; remove and
	// re-check until the chain is convex.
	frontier := undominatedIndices(results)
	for {
		removed := false
		for k := 1; k < len(frontier)-1; k++ {
			prev, cur, next := frontier[k-1], frontier[k], frontier[k+1]
			icerCur := ICER(results[cur].Option.Cost, results[cur].Option.Effect,
				results[prev].Option.Cost, results[prev].Option.Effect)
			icerNext := ICER(results[next].Option.Cost, results[next].Option.Effect,
				results[cur].Option.Cost, results[cur].Option.Effect)
			if icerCur > icerNext {
				results[cur].ExtendedDominated = true
				frontier = append(frontier[:k], frontier[k+1:]...)
				removed = true
				break
			}
		}
		if !removed {
			break
		}
	}

	// ICERs against the prior frontier point; classification off thresholds.
	for k, idx := range frontier {
		results[idx].OnFrontier = true
		if k == 0 {
			results[idx].ICER = 0 // Cheapest frontier point is the anchor
		} else {
			prev := frontier[k-1]
			results[idx].ICER = ICER(results[idx].Option.Cost, results[idx].Option.Effect,
				results[prev].Option.Cost, results[prev].Option.Effect)
		}
	}
	for i := range results {
		if !results[i].OnFrontier {
			// Flagged points still get an ICER vs the cheapest frontier
			// anchor so callers can display them.
			if len(frontier) > 0 {
				anchor := frontier[0]
				results[i].ICER = ICER(results[i].Option.Cost, results[i].Option.Effect,
					results[anchor].Option.Cost, results[anchor].Option.Effect)
			}
		}
		results[i].Classification = Classify(results[i].ICER, gdpPerCapita)
	}
	return results
}

// Classify buckets an ICER against 1x / 3x GDP-per-capita thresholds.
func Classify(icer, gdpPerCapita float64) Classification {
	switch {
	case icer < gdpPerCapita:
		return HighlyCostEffective
	case icer < 3*gdpPerCapita:
		return CostEffective
	default:
		return NotCostEffective
	}
}

func undominatedIndices(results []CEResult) []int {
	var idx []int
	for i := range results {
		if !results[i].StronglyDominated {
			idx = append(idx, i)
		}
	}
	return idx
}
