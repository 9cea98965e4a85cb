package trajectory

import (
	"math"
	"testing"

	"policysim/pkg/core/catalog"
	"policysim/pkg/core/effect"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	ivs := []catalog.Intervention{
		{ID: "sugar_tax", Min: 0, Max: 50, Baseline: 0, Scaling: catalog.ScalingLinear,
			Impacts: []catalog.ImpactRecord{
				{Outcome: "obesity", BaseEffect: -0.12, DiminishingThreshold: 30},
				{Outcome: "life_expectancy", BaseEffect: 0.01, DiminishingThreshold: 40},
			},
			Timing: catalog.Timing{ImplementationDelay: 1, RampUpPeriod: 2}},
	}
	outs := []catalog.Outcome{
		{ID: "obesity", Baseline: 28.5, Polarity: catalog.LowerIsBetter},
		{ID: "life_expectancy", Baseline: 74.8, Polarity: catalog.HigherIsBetter},
	}
	provs := []catalog.Province{
		{ID: "capital", Population: 8.2e6, Urban: 1.2, Digital: 1.25, Screening: 1.15},
		{ID: "islands", Population: 1.3e6, Urban: 0.65, Digital: 0.55, Screening: 0.60},
	}
	c, err := catalog.New(ivs, outs, provs)
	if err != nil {
		t.Fatalf("test catalog invalid: %v", err)
	}
	return c
}

func TestSeriesShapeAndOrdering(t *testing.T) {
	g := NewGenerator(testCatalog(t))
	series := g.Project("obesity", map[string]float64{"sugar_tax": 50}, nil, 15, 28.5)

	if len(series) != 16 {
		t.Fatalf("expected 16 points for horizon 15, got %d", len(series))
	}
	for i, pt := range series {
		if pt.Year != i {
			t.Fatalf("point %d carries year %d", i, pt.Year)
		}
	}
}

func TestBaselineLevelsTrackDrift(t *testing.T) {
	c := testCatalog(t)
	g := NewGenerator(c)
	levels := map[string]float64{"sugar_tax": 0}
	series := g.Project("obesity", levels, effect.Detect(c, levels), 10, 28.5)

	for _, pt := range series {
		if pt.WithIntervention != pt.Baseline {
			t.Fatalf("year %d: at catalog baseline the adjusted path must equal drift (%f != %f)",
				pt.Year, pt.WithIntervention, pt.Baseline)
		}
	}
	// Disease drift: year 10 baseline is 6% above year 0.
	want := 28.5 * 1.06
	if math.Abs(series[10].Baseline-want) > 1e-9 {
		t.Errorf("expected drifted baseline %f, got %f", want, series[10].Baseline)
	}
}

func TestPositiveOutcomeDriftsUpSlower(t *testing.T) {
	g := NewGenerator(testCatalog(t))
	series := g.Project("life_expectancy", nil, nil, 10, 74.8)
	want := 74.8 * 1.02
	if math.Abs(series[10].Baseline-want) > 1e-9 {
		t.Errorf("expected %f, got %f", want, series[10].Baseline)
	}
}

func TestSugarTaxEndToEnd(t *testing.T) {
	c := testCatalog(t)
	g := NewGenerator(c)
	levels := map[string]float64{"sugar_tax": 50}
	series := g.Project("obesity", levels, effect.Detect(c, levels), 15, 28.5)

	final := series[15]

	// Adoption at year 15: 14 years past delay >= ramp-up 2, fully adopted.
	// Level 50 > threshold 30, so the realized magnitude is 0.12/2 = 0.06 < 0.12.
	// Adjusted = 28.5*1.06 * (1 - 0.06).
	wantBase := 28.5 * 1.06
	wantAdj := wantBase * (1 - 0.06)
	if math.Abs(final.Baseline-wantBase) > 1e-9 {
		t.Errorf("baseline: expected %f, got %f", wantBase, final.Baseline)
	}
	if math.Abs(final.WithIntervention-wantAdj) > 1e-9 {
		t.Errorf("adjusted: expected %f, got %f", wantAdj, final.WithIntervention)
	}
	if final.WithIntervention >= final.Baseline {
		t.Error("intervention-adjusted obesity must sit strictly below the drift baseline")
	}
}

func TestOptimalCurveConcaveApproach(t *testing.T) {
	g := NewGenerator(testCatalog(t))
	series := g.Project("obesity", nil, nil, 10, 28.5)

	// Target for lower-is-better: 30% below baseline, reached at the horizon.
	want := 28.5 * 0.70
	if math.Abs(series[10].OptimalPolicy-want) > 1e-9 {
		t.Errorf("expected optimal endpoint %f, got %f", want, series[10].OptimalPolicy)
	}
	// Concave: the first half of the horizon covers more than half the gap.
	mid := series[5].OptimalPolicy
	halfway := 28.5 + (want-28.5)*0.5
	if mid > halfway {
		t.Errorf("approach should be concave: midpoint %f above linear halfway %f", mid, halfway)
	}
	if series[0].OptimalPolicy != 28.5 {
		t.Errorf("optimal curve must start at baseline, got %f", series[0].OptimalPolicy)
	}
}

func TestBoundsWidenWithSqrtYearAndCap(t *testing.T) {
	g := NewGenerator(testCatalog(t))
	series := g.Project("obesity", nil, nil, 30, 28.5)

	if series[0].LowerBound != series[0].UpperBound {
		t.Error("year 0 bounds must collapse onto the point estimate")
	}
	// Width fraction at year 4: 0.03*sqrt(4) = 0.06.
	pt := series[4]
	wantHalf := pt.WithIntervention * 0.06
	if math.Abs((pt.UpperBound-pt.WithIntervention)-wantHalf) > 1e-9 {
		t.Errorf("expected half-width %f, got %f", wantHalf, pt.UpperBound-pt.WithIntervention)
	}
	// Cap: 0.03*sqrt(30) = 0.164 > 0.15, so the cap binds at year 30.
	last := series[30]
	wantCap := last.WithIntervention * 0.15
	if math.Abs((last.UpperBound-last.WithIntervention)-wantCap) > 1e-9 {
		t.Errorf("cap should bind: expected half-width %f, got %f", wantCap, last.UpperBound-last.WithIntervention)
	}
}

func TestDeterminism(t *testing.T) {
	c := testCatalog(t)
	g := NewGenerator(c)
	levels := map[string]float64{"sugar_tax": 35}
	syn := effect.Detect(c, levels)

	a := g.Project("obesity", levels, syn, 25, 28.5)
	b := g.Project("obesity", levels, syn, 25, 28.5)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("year %d differs between identical calls", i)
		}
	}
}

func TestProvinceDeltasScaleWithMultipliers(t *testing.T) {
	c := testCatalog(t)
	g := NewGenerator(c)
	levels := map[string]float64{"sugar_tax": 50}
	deltas := g.ProvinceDeltas(levels, nil, 15)

	if len(deltas) != 2*len(c.Outcomes) {
		t.Fatalf("expected %d deltas, got %d", 2*len(c.Outcomes), len(deltas))
	}

	byKey := make(map[string]ProvinceDelta)
	for _, d := range deltas {
		byKey[d.Province+"/"+d.Outcome] = d
	}

	capital := byKey["capital/obesity"]
	islands := byKey["islands/obesity"]

	// Capital multipliers average 1.2, islands 0.6: the capital's obesity
	// reduction must be twice as deep.
	if capital.Delta >= 0 || islands.Delta >= 0 {
		t.Fatal("both provinces should see obesity fall")
	}
	ratio := capital.Delta / islands.Delta
	if math.Abs(ratio-2.0) > 1e-9 {
		t.Errorf("expected capital/islands delta ratio 2.0, got %f", ratio)
	}
}

func TestProvinceOverridesReplaceNationalLevels(t *testing.T) {
	c := testCatalog(t)
	g := NewGenerator(c)
	levels := map[string]float64{"sugar_tax": 50}
	overrides := map[string]map[string]float64{
		"islands": {"sugar_tax": 0}, // Islands opt out
	}
	deltas := g.ProvinceDeltas(levels, overrides, 15)
	for _, d := range deltas {
		if d.Province == "islands" && d.Outcome == "obesity" && d.Delta != 0 {
			t.Errorf("opted-out province should see zero delta, got %f", d.Delta)
		}
	}
}
