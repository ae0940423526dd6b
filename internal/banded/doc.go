// Package banded assembles and solves the banded linear systems of the cubic
// smoothing spline.
//
// For m strictly increasing sites with spacings h and weights w the package
// builds two symmetric positive-definite (m-2)x(m-2) operators:
//
//   - the roughness operator R (tridiagonal), diag 2(h[j]+h[j+1]), off h[j+1]
//   - the fidelity operator QᵀW⁻¹Q (pentadiagonal), Q the second-difference
//     operator over the sites
//
// A [System] depends only on sites and weights. [System.Factor] forms
// 6(1-p)·QᵀW⁻¹Q + p·R and factors it once with a band Cholesky decomposition;
// [Factor.Solve] then solves for any number of right-hand-side columns.
package banded
