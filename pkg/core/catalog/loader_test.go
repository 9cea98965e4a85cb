package catalog

import (
	"strings"
	"testing"
)

const fixtureYAML = `
outcomes:
  - id: obesity
    label: Adult Obesity
    baseline: 28.5
    unit: "%"
    polarity: lower_is_better
interventions:
  - id: sugar_tax
    label: Sugar Tax
    category: fiscal
    min: 0
    max: 50
    baseline: 0
    step: 5
    cost_per_unit: -2.4
    scaling: linear
    impacts:
      - outcome: obesity
        base_effect: -0.12
        diminishing_threshold: 30
    timing:
      implementation_delay: 1
      ramp_up_period: 2
provinces:
  - id: capital
    label: Capital Region
    population: 8200000
    urban: 1.2
    digital: 1.25
    screening: 1.15
`

func TestLoadYAML(t *testing.T) {
	c, err := LoadYAML([]byte(fixtureYAML))
	if err != nil {
		t.Fatalf("fixture should load: %v", err)
	}

	iv, ok := c.Intervention("sugar_tax")
	if !ok {
		t.Fatal("sugar_tax missing after load")
	}
	if iv.CostPerUnit != -2.4 {
		t.Errorf("expected cost -2.4, got %f", iv.CostPerUnit)
	}
	if iv.Timing.RampUpPeriod != 2 {
		t.Errorf("expected ramp-up 2, got %f", iv.Timing.RampUpPeriod)
	}
	if len(c.ImpactsOn("obesity")) != 1 {
		t.Errorf("expected 1 resolved impact on obesity, got %d", len(c.ImpactsOn("obesity")))
	}
}

func TestLoadYAMLRunsValidation(t *testing.T) {
	bad := strings.Replace(fixtureYAML, "max: 50", "max: 0", 1)
	if _, err := LoadYAML([]byte(bad)); err == nil {
		t.Fatal("loader must reject a degenerate range")
	}
}

func TestLoadYAMLRejectsEmptyDocument(t *testing.T) {
	if _, err := LoadYAML([]byte("outcomes: []\ninterventions: []\n")); err == nil {
		t.Fatal("empty document must be rejected")
	}
}
