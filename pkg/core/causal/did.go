package causal

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// =============================================================================
// DIFFERENCE IN DIFFERENCES
// =============================================================================

// DiDPanel is a 2x2 treated/control by pre/post panel of outcomes.
type DiDPanel struct {
	TreatedPre  []float64
	TreatedPost []float64
	ControlPre  []float64
	ControlPost []float64
}

// DifferenceInDifferences estimates the effect as the treated pre-to-post
// change minus the control pre-to-post change. The standard error sums the
// four cell variances, treating the cells as independent.
func DifferenceInDifferences(p DiDPanel) (Estimate, error) {
	cells := []struct {
		name string
		data []float64
	}{
		{"treated pre", p.TreatedPre},
		{"treated post", p.TreatedPost},
		{"control pre", p.ControlPre},
		{"control post", p.ControlPost},
	}
	n := 0
	var seSq float64
	for _, c := range cells {
		if len(c.data) < minGroupSize {
			return Estimate{}, fmt.Errorf("%s cell needs at least %d observations, got %d", c.name, minGroupSize, len(c.data))
		}
		n += len(c.data)
		seSq += stat.Variance(c.data, nil) / float64(len(c.data))
	}

	treatedChange := stat.Mean(p.TreatedPost, nil) - stat.Mean(p.TreatedPre, nil)
	controlChange := stat.Mean(p.ControlPost, nil) - stat.Mean(p.ControlPre, nil)
	return finish(treatedChange-controlChange, math.Sqrt(seSq), n), nil
}
