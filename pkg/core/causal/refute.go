package causal

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"
)

// =============================================================================
// REFUTATION SUITE
// =============================================================================

const (
	placeboIterations    = 200
	commonCauseTolerance = 0.15 // Max relative effect change under noise
	commonCauseNoiseSD   = 0.10 // Noise scale as a fraction of outcome spread
)

// RefutationResult is one refutation test's outcome. Value is the test's
// own statistic: a z-score for the placebo test, a relative change for the
// common-cause test, and the recomputed ATE for the subsample test.
type RefutationResult struct {
	Name   string
	Value  float64
	Passed bool
}

// RefutationReport bundles the suite's results. RobustnessScore is the
// fraction of tests passed.
type RefutationReport struct {
	Results         []RefutationResult
	RobustnessScore float64
}

// Refute runs the full refutation suite against a difference-in-means
// estimate and its sample. Randomness comes from the injected source so
// results are reproducible under a fixed seed.
func Refute(obs []Observation, est Estimate, rng *rand.Rand) RefutationReport {
	results := []RefutationResult{
		placeboTest(obs, est, rng),
		randomCommonCauseTest(obs, est, rng),
		subsampleTest(obs, est, rng),
	}
	passed := 0
	for _, r := range results {
		if r.Passed {
			passed++
		}
	}
	return RefutationReport{
		Results:         results,
		RobustnessScore: float64(passed) / float64(len(results)),
	}
}

// placeboTest shuffles treatment labels repeatedly and z-tests the observed
// effect against the placebo distribution. A real effect should sit far
// outside what label noise produces.
func placeboTest(obs []Observation, est Estimate, rng *rand.Rand) RefutationResult {
	shuffled := make([]Observation, len(obs))
	copy(shuffled, obs)

	placebo := make([]float64, 0, placeboIterations)
	for i := 0; i < placeboIterations; i++ {
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a].Treated, shuffled[b].Treated = shuffled[b].Treated, shuffled[a].Treated
		})
		p, err := DifferenceInMeans(shuffled)
		if err != nil {
			continue
		}
		placebo = append(placebo, p.ATE)
	}
	if len(placebo) < minGroupSize {
		return RefutationResult{Name: "placebo_treatment", Passed: false}
	}

	sd := math.Sqrt(stat.Variance(placebo, nil))
	if sd == 0 {
		return RefutationResult{Name: "placebo_treatment", Passed: false}
	}
	z := (est.ATE - stat.Mean(placebo, nil)) / sd
	return RefutationResult{
		Name:   "placebo_treatment",
		Value:  z,
		Passed: math.Abs(z) > zCritical95,
	}
}

// randomCommonCauseTest injects symmetric noise into the outcomes and
// requires the recomputed effect to stay within tolerance of the original.
func randomCommonCauseTest(obs []Observation, est Estimate, rng *rand.Rand) RefutationResult {
	outcomes := make([]float64, len(obs))
	for i, o := range obs {
		outcomes[i] = o.Outcome
	}
	noiseScale := commonCauseNoiseSD * math.Sqrt(stat.Variance(outcomes, nil))

	perturbed := make([]Observation, len(obs))
	copy(perturbed, obs)
	for i := range perturbed {
		perturbed[i].Outcome += rng.NormFloat64() * noiseScale
	}

	p, err := DifferenceInMeans(perturbed)
	if err != nil {
		return RefutationResult{Name: "random_common_cause", Passed: false}
	}
	var change float64
	if est.ATE != 0 {
		change = math.Abs(p.ATE-est.ATE) / math.Abs(est.ATE)
	} else {
		change = math.Abs(p.ATE)
	}
	return RefutationResult{
		Name:   "random_common_cause",
		Value:  change,
		Passed: change < commonCauseTolerance,
	}
}

// subsampleTest recomputes the effect on a random half of the data and
// requires the result to land inside the original 95% interval.
func subsampleTest(obs []Observation, est Estimate, rng *rand.Rand) RefutationResult {
	perm := rng.Perm(len(obs))
	half := make([]Observation, 0, len(obs)/2)
	for _, idx := range perm[:len(obs)/2] {
		half = append(half, obs[idx])
	}

	p, err := DifferenceInMeans(half)
	if err != nil {
		return RefutationResult{Name: "subsample_stability", Passed: false}
	}
	return RefutationResult{
		Name:   "subsample_stability",
		Value:  p.ATE,
		Passed: est.Contains(p.ATE),
	}
}
