package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// =============================================================================
// YAML LOADER (Alternate Catalog Fixtures)
// =============================================================================

// fileSchema is the on-disk shape of a catalog document.
type fileSchema struct {
	Interventions []Intervention `yaml:"interventions"`
	Outcomes      []Outcome      `yaml:"outcomes"`
	Provinces     []Province     `yaml:"provinces"`
}

// LoadYAML parses a catalog document and runs it through the same validation
// as the built-in catalog. Bad references or degenerate ranges fail here,
// before anything computes.
func LoadYAML(data []byte) (*Catalog, error) {
	var doc fileSchema
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: parse failed: %w", err)
	}
	if len(doc.Interventions) == 0 {
		return nil, fmt.Errorf("catalog: document declares no interventions")
	}
	if len(doc.Outcomes) == 0 {
		return nil, fmt.Errorf("catalog: document declares no outcomes")
	}
	c, err := New(doc.Interventions, doc.Outcomes, doc.Provinces)
	if err != nil {
		return nil, fmt.Errorf("catalog: validation failed: %w", err)
	}
	return c, nil
}

// LoadYAMLFile reads and parses a catalog file.
func LoadYAMLFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return LoadYAML(data)
}
