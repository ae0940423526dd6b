// Package csaps fits cubic smoothing splines to sampled data.
//
// A smoothing spline minimizes
//
//	p·Σ w[i]·|y[i] - f(x[i])|² + (1-p)·∫ |f''(t)|² dt
//
// over all cubic splines f with breaks at the sites x. The smoothing
// parameter p lies in [0, 1]: p = 0 gives the weighted least-squares straight
// line, p = 1 the natural cubic interpolant. When p is not given it is chosen
// from the site spacings and weights (see package smoothing).
//
// # Usage
//
// One-dimensional data, optionally with several channels along other axes:
//
//	s, err := csaps.Fit(x, samples, csaps.WithSmooth(0.85))
//	yi, err := s.Evaluate(xi)
//
// Rectangular grids are fitted one axis at a time:
//
//	g, err := csaps.FitGrid([][]float64{x, y}, z)
//	zi, err := g.Evaluate([][]float64{xi, yi})
//
// Parametric curves through points in N dimensions use [FitCurve], and
// [SmoothData] fits and evaluates in one call.
//
// Fitted models are immutable and safe for concurrent evaluation.
package csaps
