package csaps

import (
	"fmt"
	"math"
)

// spacings validates the sites and returns their differences.
func spacings(sites []float64) ([]float64, error) {
	if len(sites) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 sites, got %d", ErrShape, len(sites))
	}
	for i, x := range sites {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: sites[%d] = %g", ErrShape, i, x)
		}
	}

	h := make([]float64, len(sites)-1)
	for i := range h {
		h[i] = sites[i+1] - sites[i]
		if !(h[i] > 0) {
			return nil, fmt.Errorf("%w: sites[%d]=%g, sites[%d]=%g", ErrNotIncreasing, i, sites[i], i+1, sites[i+1])
		}
	}
	return h, nil
}

// weightsFor validates w against m sites. nil means unit weights.
func weightsFor(w []float64, m int) ([]float64, error) {
	if w == nil {
		out := make([]float64, m)
		for i := range out {
			out[i] = 1
		}
		return out, nil
	}
	if len(w) != m {
		return nil, fmt.Errorf("%w: got %d weights for %d sites", ErrWeights, len(w), m)
	}
	for i, v := range w {
		if !(v > 0) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: weights[%d] = %g", ErrWeights, i, v)
		}
	}
	return w, nil
}

// checkSmooth accepts NaN (automatic) or a value in [0, 1].
func checkSmooth(p float64) error {
	if math.IsNaN(p) || (p >= 0 && p <= 1) {
		return nil
	}
	return fmt.Errorf("%w: got %g", ErrSmooth, p)
}
