package causal

import (
	"math"
	"math/rand"
	"reflect"
	"testing"
)

const tol = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// sample builds a flat treated/control sample from outcome slices.
func sample(treated, control []float64) []Observation {
	obs := make([]Observation, 0, len(treated)+len(control))
	for _, y := range treated {
		obs = append(obs, Observation{Treated: true, Outcome: y, Propensity: 0.5})
	}
	for _, y := range control {
		obs = append(obs, Observation{Treated: false, Outcome: y, Propensity: 0.5})
	}
	return obs
}

// =============================================================================
// ATE ESTIMATORS
// =============================================================================

func TestDifferenceInMeans(t *testing.T) {
	// Treated mean 13, control mean 8. Each arm has sample variance 20/3,
	// so SE = sqrt(20/3/4 + 20/3/4) = sqrt(10/3).
	obs := sample([]float64{10, 12, 14, 16}, []float64{5, 7, 9, 11})
	est, err := DifferenceInMeans(obs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approxEqual(est.ATE, 5.0, tol) {
		t.Errorf("ATE = %f, want 5.0", est.ATE)
	}
	if want := math.Sqrt(10.0 / 3.0); !approxEqual(est.StdErr, want, tol) {
		t.Errorf("StdErr = %f, want %f", est.StdErr, want)
	}
	if est.SampleSize != 8 {
		t.Errorf("SampleSize = %d, want 8", est.SampleSize)
	}
	if est.CI95[0] >= est.CI95[1] {
		t.Errorf("degenerate CI %v", est.CI95)
	}
	if !est.Contains(est.ATE) {
		t.Errorf("CI %v does not contain the point estimate", est.CI95)
	}
}

func TestDifferenceInMeansRejectsSmallArms(t *testing.T) {
	obs := sample([]float64{10}, []float64{5, 7, 9})
	if _, err := DifferenceInMeans(obs); err == nil {
		t.Error("expected error for a single treated observation")
	}
}

func TestInverseProbabilityWeighted(t *testing.T) {
	// Balanced arms at propensity 0.5: terms are {6, 10, -2, -6}, mean 2,
	// matching the plain difference in means (4 - 2).
	obs := sample([]float64{3, 5}, []float64{1, 3})
	est, err := InverseProbabilityWeighted(obs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approxEqual(est.ATE, 2.0, tol) {
		t.Errorf("ATE = %f, want 2.0", est.ATE)
	}
}

func TestInverseProbabilityWeightedRejectsDegeneratePropensity(t *testing.T) {
	obs := sample([]float64{3, 5}, []float64{1, 3})
	obs[0].Propensity = 1.0
	if _, err := InverseProbabilityWeighted(obs); err == nil {
		t.Error("expected error for propensity 1.0")
	}
}

func TestConditionalATESkipsThinSubgroups(t *testing.T) {
	obs := sample([]float64{10, 12, 14, 16}, []float64{5, 7, 9, 11})
	for i := range obs {
		obs[i].Subgroup = "urban"
	}
	// Rural has only one treated observation and must be skipped.
	obs = append(obs,
		Observation{Treated: true, Outcome: 20, Subgroup: "rural"},
		Observation{Treated: false, Outcome: 1, Subgroup: "rural"},
		Observation{Treated: false, Outcome: 2, Subgroup: "rural"},
	)

	got := ConditionalATE(obs)
	if len(got) != 1 {
		t.Fatalf("subgroup estimates = %d, want 1", len(got))
	}
	if got[0].Subgroup != "urban" {
		t.Errorf("subgroup = %q, want urban", got[0].Subgroup)
	}
	if !approxEqual(got[0].Estimate.ATE, 5.0, tol) {
		t.Errorf("urban ATE = %f, want 5.0", got[0].Estimate.ATE)
	}
}

// =============================================================================
// 2SLS
// =============================================================================

func TestTwoStageLeastSquaresRecoversExactSlope(t *testing.T) {
	// D = 2Z, Y = 3D: both stages are exact, so the slope is 3 with zero
	// residual error.
	data := make([]IVObservation, 0, 6)
	for z := 0.0; z < 6; z++ {
		data = append(data, IVObservation{Instrument: z, Treatment: 2 * z, Outcome: 6 * z})
	}
	est, err := TwoStageLeastSquares(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approxEqual(est.ATE, 3.0, 1e-6) {
		t.Errorf("ATE = %f, want 3.0", est.ATE)
	}
	if est.StdErr > 1e-6 {
		t.Errorf("StdErr = %f, want ~0 for exact data", est.StdErr)
	}
}

func TestTwoStageLeastSquaresRejectsUselessInstrument(t *testing.T) {
	data := []IVObservation{
		{Instrument: 1, Treatment: 5, Outcome: 2},
		{Instrument: 2, Treatment: 5, Outcome: 3},
		{Instrument: 3, Treatment: 5, Outcome: 4},
	}
	if _, err := TwoStageLeastSquares(data); err == nil {
		t.Error("expected error when treatment never responds to the instrument")
	}
}

// =============================================================================
// DIFFERENCE IN DIFFERENCES
// =============================================================================

func TestDifferenceInDifferences(t *testing.T) {
	// Treated change 10, control change 5, effect 5.
	est, err := DifferenceInDifferences(DiDPanel{
		TreatedPre:  []float64{10, 10},
		TreatedPost: []float64{20, 20},
		ControlPre:  []float64{10, 10},
		ControlPost: []float64{15, 15},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approxEqual(est.ATE, 5.0, tol) {
		t.Errorf("ATE = %f, want 5.0", est.ATE)
	}
	if est.StdErr != 0 {
		t.Errorf("StdErr = %f, want 0 for constant cells", est.StdErr)
	}
}

func TestDifferenceInDifferencesRejectsThinCell(t *testing.T) {
	_, err := DifferenceInDifferences(DiDPanel{
		TreatedPre:  []float64{10},
		TreatedPost: []float64{20, 20},
		ControlPre:  []float64{10, 10},
		ControlPost: []float64{15, 15},
	})
	if err == nil {
		t.Error("expected error for a single-observation cell")
	}
}

// =============================================================================
// SYNTHETIC CONTROL
// =============================================================================

func TestSyntheticControlExactDonorTakesAllWeight(t *testing.T) {
	res, err := SyntheticControl(
		[]float64{1, 2, 3}, []float64{4, 5},
		[]Donor{
			{Name: "a", Pre: []float64{1, 2, 3}, Post: []float64{3, 3}},
			{Name: "b", Pre: []float64{5, 5, 5}, Post: []float64{9, 9}},
		},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Weights["a"] != 1 || res.Weights["b"] != 0 {
		t.Errorf("weights = %v, want a=1 b=0", res.Weights)
	}
	// Gaps: 4-3=1, 5-3=2, average 1.5.
	if !approxEqual(res.Estimate.ATE, 1.5, tol) {
		t.Errorf("ATE = %f, want 1.5", res.Estimate.ATE)
	}
}

func TestSyntheticControlInverseMSEWeights(t *testing.T) {
	// Donor a has pre-MSE 1, donor b has pre-MSE 9: weights 0.9 and 0.1.
	res, err := SyntheticControl(
		[]float64{1, 2, 3}, []float64{4},
		[]Donor{
			{Name: "a", Pre: []float64{2, 3, 4}, Post: []float64{4}},
			{Name: "b", Pre: []float64{4, 5, 6}, Post: []float64{14}},
		},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approxEqual(res.Weights["a"], 0.9, tol) || !approxEqual(res.Weights["b"], 0.1, tol) {
		t.Errorf("weights = %v, want a=0.9 b=0.1", res.Weights)
	}
	// Synthetic post = 0.9*4 + 0.1*14 = 5, gap = 4 - 5 = -1.
	if !approxEqual(res.Estimate.ATE, -1.0, tol) {
		t.Errorf("ATE = %f, want -1.0", res.Estimate.ATE)
	}
}

func TestSyntheticControlRejectsMismatchedDonor(t *testing.T) {
	_, err := SyntheticControl(
		[]float64{1, 2, 3}, []float64{4},
		[]Donor{{Name: "a", Pre: []float64{1, 2}, Post: []float64{4}}},
	)
	if err == nil {
		t.Error("expected error for a donor with mismatched pre-period length")
	}
}

// =============================================================================
// REFUTATION
// =============================================================================

// separatedSample builds a sample with a strong, obvious effect: treated
// outcomes near 10, control near 0, small alternating perturbations.
func separatedSample(n int) []Observation {
	obs := make([]Observation, 0, 2*n)
	for i := 0; i < n; i++ {
		jitter := 0.1
		if i%2 == 1 {
			jitter = -0.1
		}
		obs = append(obs,
			Observation{Treated: true, Outcome: 10 + jitter},
			Observation{Treated: false, Outcome: jitter},
		)
	}
	return obs
}

func TestRefuteStrongEffect(t *testing.T) {
	obs := separatedSample(20)
	est, err := DifferenceInMeans(obs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	report := Refute(obs, est, rand.New(rand.NewSource(7)))
	if len(report.Results) != 3 {
		t.Fatalf("results = %d, want 3", len(report.Results))
	}

	byName := make(map[string]RefutationResult)
	for _, r := range report.Results {
		byName[r.Name] = r
	}
	// A 10-point effect on near-constant arms dwarfs label-shuffle noise
	// and survives 10%-of-spread outcome noise.
	if !byName["placebo_treatment"].Passed {
		t.Errorf("placebo test failed with z = %f", byName["placebo_treatment"].Value)
	}
	if !byName["random_common_cause"].Passed {
		t.Errorf("common-cause test failed with relative change %f", byName["random_common_cause"].Value)
	}
	if report.RobustnessScore < 2.0/3.0 {
		t.Errorf("robustness score = %f, want >= 2/3", report.RobustnessScore)
	}

	passed := 0
	for _, r := range report.Results {
		if r.Passed {
			passed++
		}
	}
	if want := float64(passed) / 3.0; report.RobustnessScore != want {
		t.Errorf("robustness score = %f, inconsistent with %d passed tests", report.RobustnessScore, passed)
	}
}

func TestRefuteReproducibleUnderFixedSeed(t *testing.T) {
	obs := separatedSample(20)
	est, err := DifferenceInMeans(obs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a := Refute(obs, est, rand.New(rand.NewSource(42)))
	b := Refute(obs, est, rand.New(rand.NewSource(42)))
	if !reflect.DeepEqual(a, b) {
		t.Error("identical seeds produced different refutation reports")
	}
}
