package healthecon

// =============================================================================
// QALY (Quality-Adjusted Life Years)
// =============================================================================

// HealthState is a period spent at a constant utility weight.
// Utility 1.0 = full health, 0 = death.
type HealthState struct {
	Name    string
	Utility float64
	Years   int
}

// QALYResult carries both undiscounted and discounted totals.
type QALYResult struct {
	Total      float64
	Discounted float64
}

// CalculateQALY sums per-period utility across a sequence of health states
// with half-cycle correction: the first and last period of each state count
// at half weight, reflecting that transitions happen mid-cycle on average.
func CalculateQALY(states []HealthState, discountRate float64) QALYResult {
	var res QALYResult
	year := 0
	for _, st := range states {
		for p := 0; p < st.Years; p++ {
			weight := st.Utility
			if p == 0 || p == st.Years-1 {
				weight *= 0.5
			}
			res.Total += weight
			res.Discounted += weight * DiscountFactor(float64(year), discountRate)
			year++
		}
	}
	return res
}

// =============================================================================
// DALY (Disability-Adjusted Life Years)
// =============================================================================

// DALYInput describes one cause's burden.
type DALYInput struct {
	Deaths            float64
	YearsLostPerDeath float64 // Reference life expectancy minus age at death
	DisabilityWeight  float64 // 0 = full health, 1 = death-equivalent
	PrevalentCases    float64
	AvgDurationYears  float64
	DiscountRate      float64
}

// DALYResult decomposes the burden into its mortality and morbidity parts.
type DALYResult struct {
	YLL   float64 // Years of Life Lost
	YLD   float64 // Years Lived with Disability
	Total float64
}

// CalculateDALY computes DALY = YLL + YLD with discounted durations.
func CalculateDALY(in DALYInput) DALYResult {
	yll := in.Deaths * discountedYears(in.YearsLostPerDeath, in.DiscountRate)
	yld := in.DisabilityWeight * in.PrevalentCases * discountedYears(in.AvgDurationYears, in.DiscountRate)
	return DALYResult{YLL: yll, YLD: yld, Total: yll + yld}
}

// discountedYears is the present value of a span of years, handling the
// fractional final year.
func discountedYears(years float64, rate float64) float64 {
	whole := int(years)
	pv := AnnuityFactor(rate, whole)
	frac := years - float64(whole)
	if frac > 0 {
		pv += frac * DiscountFactor(float64(whole+1), rate)
	}
	return pv
}
