package csaps

import (
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-spline/spline/ndarray"
	"github.com/cwbudde/algo-spline/spline/ppform"
)

// GridSpline is a fitted tensor-product smoothing spline over a rectangular
// grid. It embeds the fitted [ppform.NdGridPPForm].
type GridSpline struct {
	*ppform.NdGridPPForm
	smooth []float64
}

// Smooth returns the smoothing parameter used on each grid axis.
func (g *GridSpline) Smooth() []float64 {
	return slices.Clone(g.smooth)
}

// FitGrid fits samples given on the grid spanned by sites, one site slice
// per axis. samples has shape (len(sites[0]), …, len(sites[n-1]),
// channels…); trailing channel axes are optional.
//
// The axes are smoothed one after another. Each pass runs the univariate
// fitter along one grid axis with every other dimension, including the
// coefficients produced by earlier passes, treated as channels. Automatic
// smoothing parameters depend on that axis' sites and weights only.
func FitGrid(sites [][]float64, samples *ndarray.Array, opts ...GridOption) (*GridSpline, error) {
	cfg := applyGridOptions(opts)
	n := len(sites)
	if n == 0 {
		return nil, fmt.Errorf("%w: no grid axes", ErrShape)
	}
	if samples == nil || samples.Ndim() < n {
		return nil, fmt.Errorf("%w: samples need at least %d dims", ErrShape, n)
	}

	spacing := make([][]float64, n)
	for i, x := range sites {
		h, err := spacings(x)
		if err != nil {
			return nil, fmt.Errorf("axis %d: %w", i, err)
		}
		if samples.Dim(i) != len(x) {
			return nil, fmt.Errorf("%w: samples shape %v has %d values on axis %d, want %d",
				ErrShape, samples.Shape(), samples.Dim(i), i, len(x))
		}
		spacing[i] = h
	}

	weights, err := gridWeights(cfg.weights, sites)
	if err != nil {
		return nil, err
	}
	smooth, err := gridSmooth(cfg.smooth, n)
	if err != nil {
		return nil, err
	}

	cur := samples.Clone()
	used := make([]float64, n)
	for i := 0; i < n; i++ {
		// Axis i sits behind the (pieces, order) pairs of the earlier passes.
		front, err := cur.MoveAxis(2*i, 0)
		if err != nil {
			return nil, err
		}
		rest := front.Shape()[1:]
		res, err := solveBlock(spacing[i], front.Data(), weights[i], ndarray.Prod(rest), smooth[i])
		if err != nil {
			return nil, fmt.Errorf("axis %d: %w", i, err)
		}
		used[i] = res.smooth

		fitted, err := ndarray.FromSlice(res.coeffs, append([]int{len(sites[i]) - 1, res.order}, rest...)...)
		if err != nil {
			return nil, err
		}
		cur, err = fitted.Transpose(pairPerm(fitted.Ndim(), i)...)
		if err != nil {
			return nil, err
		}
	}

	breaks := make([][]float64, n)
	for i, x := range sites {
		breaks[i] = slices.Clone(x)
	}
	pp, err := ppform.NewNdGrid(breaks, cur)
	if err != nil {
		return nil, err
	}
	return &GridSpline{NdGridPPForm: pp, smooth: used}, nil
}

// pairPerm moves the leading (pieces, order) pair of an ndim tensor to
// positions 2i and 2i+1.
func pairPerm(ndim, i int) []int {
	perm := make([]int, 0, ndim)
	for j := 2; j < 2*i+2; j++ {
		perm = append(perm, j)
	}
	perm = append(perm, 0, 1)
	for j := 2*i + 2; j < ndim; j++ {
		perm = append(perm, j)
	}
	return perm
}

func gridWeights(w [][]float64, sites [][]float64) ([][]float64, error) {
	if w != nil && len(w) != len(sites) {
		return nil, fmt.Errorf("%w: got weights for %d axes, want %d", ErrWeights, len(w), len(sites))
	}
	out := make([][]float64, len(sites))
	for i, x := range sites {
		var wi []float64
		if w != nil {
			wi = w[i]
		}
		v, err := weightsFor(wi, len(x))
		if err != nil {
			return nil, fmt.Errorf("axis %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

func gridSmooth(p []float64, n int) ([]float64, error) {
	out := make([]float64, n)
	switch len(p) {
	case 0:
		for i := range out {
			out[i] = math.NaN()
		}
		return out, nil
	case 1:
		for i := range out {
			out[i] = p[0]
		}
	case n:
		copy(out, p)
	default:
		return nil, fmt.Errorf("%w: got %d values for %d axes", ErrSmooth, len(p), n)
	}
	for i, v := range out {
		if err := checkSmooth(v); err != nil {
			return nil, fmt.Errorf("axis %d: %w", i, err)
		}
	}
	return out, nil
}
