package csaps

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-spline/spline/ndarray"
)

// FitCurve fits a parametric smoothing spline through points of shape
// (ndim, n): one row per coordinate, one column per point. Every coordinate
// is a channel of a single fit along the parameter, which defaults to the
// cumulative chord length starting at 0. [WithParameter] overrides it;
// [WithAxis] is ignored.
//
// Consecutive identical points give a zero chord and fail with
// [ErrNotIncreasing].
func FitCurve(points *ndarray.Array, opts ...Option) (*Spline, error) {
	cfg := applyOptions(opts)
	if points == nil || points.Ndim() != 2 {
		return nil, fmt.Errorf("%w: points must have shape (ndim, n)", ErrShape)
	}

	t := cfg.parameter
	if t == nil {
		t = chordLength(points)
	}
	return Fit(t, points, append(opts[:len(opts):len(opts)], WithAxis(-1))...)
}

// chordLength returns the cumulative Euclidean distance along the columns
// of a (ndim, n) array.
func chordLength(points *ndarray.Array) []float64 {
	ndim, n := points.Dim(0), points.Dim(1)
	data := points.Data()

	seg := make([]float64, n)
	diff := make([]float64, n-1)
	for d := 0; d < ndim; d++ {
		row := data[d*n : (d+1)*n]
		floats.SubTo(diff, row[1:], row[:n-1])
		floats.Mul(diff, diff)
		floats.Add(seg[1:], diff)
	}
	for i := 1; i < n; i++ {
		seg[i] = math.Sqrt(seg[i])
	}
	floats.CumSum(seg, seg)
	return seg
}
