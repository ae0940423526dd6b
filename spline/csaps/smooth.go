package csaps

import (
	"fmt"

	"github.com/cwbudde/algo-spline/spline/ndarray"
)

// SmoothData fits samples against sites and evaluates the fit at xi. The
// result has the sample shape with the fitted axis resized to len(xi). It
// also returns the smoothing parameter that was used.
func SmoothData(sites []float64, samples *ndarray.Array, xi []float64, opts ...Option) (*ndarray.Array, float64, error) {
	s, err := Fit(sites, samples, opts...)
	if err != nil {
		return nil, 0, err
	}
	if xi == nil {
		xi = sites
	}
	out, err := s.Evaluate(xi)
	if err != nil {
		return nil, 0, fmt.Errorf("csaps: evaluate: %w", err)
	}
	return out, s.Smooth(), nil
}
