package csaps

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-spline/spline/ndarray"
	"github.com/cwbudde/algo-spline/spline/ppform"
)

// Spline is a fitted univariate smoothing spline. It embeds the fitted
// [ppform.PPForm], so evaluation, differentiation and integration are
// available directly.
type Spline struct {
	*ppform.PPForm
	smooth float64
}

// Smooth returns the smoothing parameter used by the fit.
func (s *Spline) Smooth() float64 {
	return s.smooth
}

// Fit fits a smoothing spline to samples along the axis selected with
// [WithAxis] (default -1). The length of that axis must equal len(sites);
// every other axis is fitted independently as a channel sharing the same
// sites, weights and smoothing parameter.
//
// Two sites give a straight line (order 2) and a reported smooth of 1.
func Fit(sites []float64, samples *ndarray.Array, opts ...Option) (*Spline, error) {
	cfg := applyOptions(opts)
	if samples == nil {
		return nil, fmt.Errorf("%w: nil samples", ErrShape)
	}

	h, err := spacings(sites)
	if err != nil {
		return nil, err
	}
	axis, err := ndarray.NormalizeAxis(cfg.axis, samples.Ndim())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShape, err)
	}
	m := len(sites)
	if samples.Dim(axis) != m {
		return nil, fmt.Errorf("%w: samples shape %v has %d values on axis %d, want %d",
			ErrShape, samples.Shape(), samples.Dim(axis), axis, m)
	}
	w, err := weightsFor(cfg.weights, m)
	if err != nil {
		return nil, err
	}
	if err := checkSmooth(cfg.smooth); err != nil {
		return nil, err
	}

	front, err := samples.MoveAxis(axis, 0)
	if err != nil {
		return nil, err
	}
	channels := front.Shape()[1:]
	res, err := solveBlock(h, front.Data(), w, ndarray.Prod(channels), cfg.smooth)
	if err != nil {
		return nil, err
	}

	coeffs, err := ndarray.FromSlice(res.coeffs, append([]int{m - 1, res.order}, channels...)...)
	if err != nil {
		return nil, err
	}
	pp, err := ppform.New(slices.Clone(sites), coeffs, axis, samples.Shape())
	if err != nil {
		return nil, err
	}
	return &Spline{PPForm: pp, smooth: res.smooth}, nil
}

// FitSlice fits scalar samples, one per site.
func FitSlice(sites, samples []float64, opts ...Option) (*Spline, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: no samples", ErrShape)
	}
	return Fit(sites, ndarray.Vector(samples), opts...)
}
