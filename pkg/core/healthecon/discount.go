// Package healthecon implements standard health-economic machinery:
// discounting, QALY/DALY computation, cost-effectiveness analysis with
// dominance pruning, and probabilistic sensitivity analysis.
package healthecon

import "math"

// DefaultDiscountRate is the conventional 3% annual rate used when a caller
// does not supply one.
const DefaultDiscountRate = 0.03

// DiscountFactor returns (1+rate)^-year. Year 0 is always 1; the factor is
// strictly decreasing in year for any positive rate.
func DiscountFactor(year float64, rate float64) float64 {
	return math.Pow(1.0+rate, -year)
}

// AnnuityFactor is the present value of a 1-per-year stream over `years`
// years, payments at year end. With a zero rate it degenerates to `years`.
func AnnuityFactor(rate float64, years int) float64 {
	if years <= 0 {
		return 0
	}
	if rate == 0 {
		return float64(years)
	}
	return (1.0 - math.Pow(1.0+rate, -float64(years))) / rate
}
