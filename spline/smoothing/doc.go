// Package smoothing selects a default smoothing parameter for cubic
// smoothing splines.
//
// The selector balances the trace of the roughness operator R against the
// trace of the data-fidelity operator QᵀW⁻¹Q:
//
//	p = 1 / (1 + tr(R) / (6·tr(QᵀW⁻¹Q)))
//
// The result depends only on site spacings and weights, never on sample
// values. Dense or heavily weighted sites push p towards 1 (interpolation),
// sparse or lightly weighted sites push it towards 0 (straight line).
package smoothing
