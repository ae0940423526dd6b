// Package ppform implements immutable piecewise-polynomial (PP) spline
// models and their evaluation.
//
// A [PPForm] holds one strictly increasing breaks sequence and, per piece,
// local power-basis coefficients (highest degree first) for every channel of
// the fitted samples. An [NdGridPPForm] is the tensor-product counterpart
// over a rectangular grid: one breaks sequence per axis and a coefficient
// tensor laid out as
//
//	(pieces₀, order₀, pieces₁, order₁, …, channels…)
//
// Both variants satisfy [Model] and are dispatched by their [Kind] tag in
// [Evaluate].
//
// Evaluation locates each query in its piece by binary search and applies
// Horner's rule in the local coordinate. Queries outside the breaks extend
// the boundary polynomials unless extrapolation is disabled, in which case
// they receive a fill value (NaN by default).
//
// Common workflows:
//   - pp.Evaluate(x, WithNu(1)) for first derivatives
//   - pp.Antiderivative(1) followed by Evaluate for running integrals
//   - pp.Integrate(a, b) for definite integrals per channel
//   - grid.Evaluate(xi) or grid.EvaluatePoints(points) for N-d models
package ppform
