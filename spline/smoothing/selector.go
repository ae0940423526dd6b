package smoothing

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-spline/internal/banded"
)

var (
	// ErrSites indicates too few or unordered sites.
	ErrSites = errors.New("smoothing: sites must be strictly increasing with at least 2 values")
	// ErrWeights indicates a weight vector of the wrong length or with
	// non-positive entries.
	ErrWeights = errors.New("smoothing: weights must be positive, one per site")
)

// Select returns the default smoothing parameter for the given sites and
// weights. A nil weights slice means unit weights. Two sites always yield 1.
func Select(sites, weights []float64) (float64, error) {
	m := len(sites)
	if m < 2 {
		return 0, fmt.Errorf("%w: got %d", ErrSites, m)
	}
	if weights == nil {
		weights = ones(m)
	}
	if len(weights) != m {
		return 0, fmt.Errorf("%w: got %d weights for %d sites", ErrWeights, len(weights), m)
	}
	for i, w := range weights {
		if !(w > 0) || math.IsInf(w, 0) {
			return 0, fmt.Errorf("%w: weights[%d] = %g", ErrWeights, i, w)
		}
	}

	h := make([]float64, m-1)
	for i := range h {
		h[i] = sites[i+1] - sites[i]
		if !(h[i] > 0) {
			return 0, fmt.Errorf("%w: sites[%d]=%g, sites[%d]=%g", ErrSites, i, sites[i], i+1, sites[i+1])
		}
	}
	if m == 2 {
		return 1, nil
	}

	sys, err := banded.Assemble(h, weights)
	if err != nil {
		return 0, err
	}
	return FromSystem(sys), nil
}

// FromSystem returns the default smoothing parameter of an assembled system.
func FromSystem(sys *banded.System) float64 {
	return FromTraces(sys.RoughnessTrace(), sys.FidelityTrace())
}

// FromTraces returns 1 / (1 + roughness / (6·fidelity)).
func FromTraces(roughness, fidelity float64) float64 {
	return 1 / (1 + roughness/(6*fidelity))
}

func ones(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	return w
}
