package healthecon

import (
	"math/rand"
	"sort"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"
)

// =============================================================================
// PROBABILISTIC SENSITIVITY ANALYSIS (Monte Carlo)
// =============================================================================

// PSAInput parameterizes a Monte Carlo run. Randomness comes from the
// injected source so runs are reproducible under a fixed seed.
type PSAInput struct {
	MeanCost   float64
	MeanQALY   float64
	CostStdDev float64 // Absolute, same units as MeanCost
	QALYStdDev float64
	Iterations int
	WTPGrid    []float64 // Willingness-to-pay points for the CEAC
}

// CEACPoint is one point on the cost-effectiveness acceptability curve.
type CEACPoint struct {
	WillingnessToPay  float64
	ProbCostEffective float64
}

// PSAResult summarizes the sampled distribution.
type PSAResult struct {
	RunID      string
	Iterations int

	MeanCost float64
	MeanQALY float64
	MeanICER float64 // Ratio of means; +Inf when mean QALY gain is <= 0

	CostCI95 [2]float64 // Percentile-based 95% interval
	QALYCI95 [2]float64

	CEAC []CEACPoint
}

// RunPSA draws repeated cost/QALY samples from clamped approximate
// distributions around the means and reports the mean, a percentile 95%
// interval, and the acceptability curve over the WTP grid.
//
// Sampling is a symmetric normal perturbation clamped to sane ranges rather
// than true gamma/beta draws; the approximation is deliberate (the inputs are
// themselves point estimates, not fitted distributions).
func RunPSA(in PSAInput, rng *rand.Rand) PSAResult {
	n := in.Iterations
	if n <= 0 {
		n = 1000
	}

	costs := make([]float64, n)
	qalys := make([]float64, n)
	for i := 0; i < n; i++ {
		cost := in.MeanCost + rng.NormFloat64()*in.CostStdDev
		if cost < 0 {
			cost = 0
		}
		qaly := in.MeanQALY + rng.NormFloat64()*in.QALYStdDev
		if qaly < 0 {
			qaly = 0
		}
		costs[i] = cost
		qalys[i] = qaly
	}

	res := PSAResult{
		RunID:      uuid.NewString(),
		Iterations: n,
		MeanCost:   stat.Mean(costs, nil),
		MeanQALY:   stat.Mean(qalys, nil),
	}
	res.MeanICER = ICER(res.MeanCost, res.MeanQALY, 0, 0)
	res.CostCI95 = percentileInterval(costs)
	res.QALYCI95 = percentileInterval(qalys)

	for _, wtp := range in.WTPGrid {
		accepted := 0
		for i := 0; i < n; i++ {
			if NMB(costs[i], qalys[i], wtp) >= 0 {
				accepted++
			}
		}
		res.CEAC = append(res.CEAC, CEACPoint{
			WillingnessToPay:  wtp,
			ProbCostEffective: float64(accepted) / float64(n),
		})
	}
	return res
}

// percentileInterval returns the empirical [2.5%, 97.5%] interval.
func percentileInterval(samples []float64) [2]float64 {
	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)
	return [2]float64{
		stat.Quantile(0.025, stat.Empirical, sorted, nil),
		stat.Quantile(0.975, stat.Empirical, sorted, nil),
	}
}
