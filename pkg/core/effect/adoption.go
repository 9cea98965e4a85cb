// Package effect implements the intervention effect pipeline: synergy
// detection, adoption-curve gating, diminishing returns, and per-outcome
// composition of every active intervention's fractional effect.
package effect

import "math"

// adoptionSteepness controls how sharply the logistic uptake curve turns on
// around the midpoint of the ramp-up period.
const adoptionSteepness = 6.0

// Adoption returns the realized fraction [0,1] of an intervention's effect in
// a given year, modeling rollout lag (delay) and gradual uptake (rampUp).
// Zero through the delay, a logistic S-curve over the ramp, saturated at 1.
func Adoption(year, delay, rampUp float64) float64 {
	if year <= delay {
		return 0
	}
	if rampUp <= 0 {
		return 1
	}
	progress := (year - delay) / rampUp
	if progress >= 1 {
		return 1
	}
	return 1.0 / (1.0 + math.Exp(-adoptionSteepness*(progress-0.5)))
}

// DiminishingReturns attenuates an effect once the level crosses the declared
// threshold: identity below, hyperbolic decay above. Marginal benefit
// saturates at high intensity but never reverses sign.
func DiminishingReturns(baseEffect, level, threshold float64) float64 {
	if level <= threshold {
		return baseEffect
	}
	excess := level - threshold
	return baseEffect / (1.0 + 0.05*excess)
}
