package banded

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"
)

// Row returns row i of a row-major block with c columns.
func Row(data []float64, i, c int) []float64 {
	return data[i*c : (i+1)*c]
}

// SubScale computes dst = (a - b) * s elementwise.
func SubScale(dst, a, b []float64, s float64) {
	vecmath.ScaleBlock(dst, b, -1)
	vecmath.AddMulBlock(dst, a, dst, s)
}

// DividedDifferences returns the first divided differences
// (y[i+1]-y[i])/h[i] of a row-major (m x c) block as an (m-1 x c) block.
func DividedDifferences(h, y []float64, c int) []float64 {
	m := len(h) + 1
	out := make([]float64, (m-1)*c)
	for i := 0; i < m-1; i++ {
		SubScale(Row(out, i, c), Row(y, i+1, c), Row(y, i, c), 1/h[i])
	}
	return out
}

// SecondDifferences builds the right-hand side of the smoothing system:
// row j holds (y[j+2]-y[j+1])/h[j+1] - (y[j+1]-y[j])/h[j] for every channel.
// y is a row-major (m x c) block with m = len(h)+1 >= 3.
func SecondDifferences(h, y []float64, c int) (*mat.Dense, error) {
	m := len(h) + 1
	if m < 3 {
		return nil, fmt.Errorf("banded: need at least 3 sites, got %d", m)
	}
	if len(y) != m*c {
		return nil, fmt.Errorf("banded: got %d values for %d sites x %d channels", len(y), m, c)
	}

	d := DividedDifferences(h, y, c)
	rhs := make([]float64, (m-2)*c)
	for j := 0; j < m-2; j++ {
		SubScale(Row(rhs, j, c), Row(d, j+1, c), Row(d, j, c), 1)
	}
	return mat.NewDense(m-2, c, rhs), nil
}

// Rows copies a solution matrix into a contiguous row-major block.
func Rows(x *mat.Dense) []float64 {
	r, c := x.Dims()
	raw := x.RawMatrix()
	if raw.Stride == c {
		return append([]float64(nil), raw.Data[:r*c]...)
	}
	out := make([]float64, r*c)
	for i := 0; i < r; i++ {
		copy(Row(out, i, c), raw.Data[i*raw.Stride:i*raw.Stride+c])
	}
	return out
}
