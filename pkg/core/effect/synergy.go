package effect

import (
	"sort"

	"policysim/pkg/core/catalog"
)

// =============================================================================
// SYNERGY DETECTOR
// =============================================================================

// ActiveSynergy is an unordered pair of simultaneously-active interventions
// with its resolved multiplier. First and Second are stored in lexical order
// so the pair is canonical regardless of catalog iteration order.
type ActiveSynergy struct {
	First       string
	Second      string
	Multiplier  float64
	Description string
}

// Touches reports whether the synergy involves the given intervention.
func (s ActiveSynergy) Touches(id string) bool {
	return s.First == id || s.Second == id
}

// Detect finds every catalog-declared synergy whose both endpoints are active.
// An intervention is active iff its level is strictly above baseline; a
// missing entry in levels means the intervention sits at baseline. Pure and
// stateless: recompute on every level change.
func Detect(c *catalog.Catalog, levels map[string]float64) []ActiveSynergy {
	active := make(map[string]bool, len(levels))
	for _, iv := range c.Interventions {
		level, ok := levels[iv.ID]
		if ok && iv.Clamp(level) > iv.Baseline {
			active[iv.ID] = true
		}
	}

	seen := make(map[string]bool)
	var out []ActiveSynergy
	for _, iv := range c.Interventions {
		if !active[iv.ID] {
			continue
		}
		for _, edge := range iv.Synergies {
			if !active[edge.Partner] {
				continue
			}
			a, b := iv.ID, edge.Partner
			if b < a {
				a, b = b, a
			}
			key := a + "|" + b
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, ActiveSynergy{
				First:       a,
				Second:      b,
				Multiplier:  edge.Multiplier,
				Description: edge.Description,
			})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].First != out[j].First {
			return out[i].First < out[j].First
		}
		return out[i].Second < out[j].Second
	})
	return out
}
