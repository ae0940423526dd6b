package csaps

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spline/internal/banded"
	"github.com/cwbudde/algo-spline/spline/smoothing"
)

// pass is the result of smoothing one (m x c) block along its rows.
type pass struct {
	coeffs []float64 // (m-1) x order x c, row-major
	order  int
	smooth float64
}

// solveBlock fits every column of the row-major (m x c) block y against
// the validated spacings h and weights w. smooth is NaN for automatic
// selection.
func solveBlock(h, y, w []float64, c int, smooth float64) (pass, error) {
	m := len(h) + 1
	if m == 2 {
		return linearPass(h[0], y, c), nil
	}

	sys, err := banded.Assemble(h, w)
	if err != nil {
		return pass{}, fmt.Errorf("%w: %v", ErrShape, err)
	}
	p := smooth
	if math.IsNaN(p) {
		p = smoothing.FromSystem(sys)
	}

	rhs, err := banded.SecondDifferences(h, y, c)
	if err != nil {
		return pass{}, fmt.Errorf("%w: %v", ErrShape, err)
	}
	fac, err := sys.Factor(p)
	if err != nil {
		if errors.Is(err, banded.ErrSingular) {
			return pass{}, fmt.Errorf("%w: %v", ErrSingularSystem, err)
		}
		return pass{}, err
	}
	sol, err := fac.Solve(rhs)
	if err != nil {
		return pass{}, fmt.Errorf("%w: %v", ErrSingularSystem, err)
	}
	u := banded.Rows(sol)

	return pass{coeffs: cubicCoeffs(h, y, w, u, c, p), order: 4, smooth: p}, nil
}

// linearPass is the two-site case: one straight piece per channel.
func linearPass(h float64, y []float64, c int) pass {
	coeffs := make([]float64, 2*c)
	banded.SubScale(banded.Row(coeffs, 0, c), banded.Row(y, 1, c), banded.Row(y, 0, c), 1/h)
	copy(banded.Row(coeffs, 1, c), banded.Row(y, 0, c))
	return pass{coeffs: coeffs, order: 2, smooth: 1}
}

// cubicCoeffs turns the solution u ((m-2) x c) into per-piece power-basis
// coefficients, highest degree first.
func cubicCoeffs(h, y, w, u []float64, c int, p float64) []float64 {
	m := len(h) + 1
	row := banded.Row

	// U = u padded with a zero row at both ends.
	U := make([]float64, m*c)
	copy(U[c:], u)
	d1 := banded.DividedDifferences(h, U, c)
	D := make([]float64, (m+1)*c)
	copy(D[c:], d1)

	// yi = y - 6(1-p)/w · diff(D)
	yi := make([]float64, m*c)
	for i := 0; i < m; i++ {
		dst := row(yi, i, c)
		banded.SubScale(dst, row(D, i+1, c), row(D, i, c), -6*(1-p)/w[i])
		vecmath.AddMulBlock(dst, dst, row(y, i, c), 1)
	}

	c3 := make([]float64, m*c)
	vecmath.ScaleBlock(c3[c:(m-1)*c], u, p)

	dyi := banded.DividedDifferences(h, yi, c)
	out := make([]float64, (m-1)*4*c)
	tmp := make([]float64, c)
	for i := 0; i < m-1; i++ {
		lo, hi := row(c3, i, c), row(c3, i+1, c)
		banded.SubScale(row(out, i*4, c), hi, lo, 1/h[i])
		vecmath.ScaleBlock(row(out, i*4+1, c), lo, 3)

		// c2 = dyi - h·(2·c3[i] + c3[i+1])
		vecmath.AddMulBlock(tmp, lo, lo, 1)
		vecmath.AddMulBlock(tmp, tmp, hi, -h[i])
		vecmath.AddMulBlock(row(out, i*4+2, c), row(dyi, i, c), tmp, 1)

		copy(row(out, i*4+3, c), row(yi, i, c))
	}
	return out
}
