package banded

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrSingular is returned when the combined system cannot be factored.
// This cannot happen for strictly increasing sites and positive weights.
var ErrSingular = errors.New("banded: system is not positive definite")

// bandwidth is the number of super-diagonals of the combined system.
const bandwidth = 2

// System holds the sample-independent operators of one smoothing pass.
type System struct {
	n int

	// Row-major upper bands, n*(bandwidth+1) values each:
	// row i holds A[i,i], A[i,i+1], A[i,i+2].
	roughness []float64
	fidelity  []float64
}

// Assemble builds R and QᵀW⁻¹Q from the site spacings h (len m-1) and the
// weights w (len m). It requires m >= 3.
func Assemble(h, w []float64) (*System, error) {
	m := len(h) + 1
	if m < 3 {
		return nil, fmt.Errorf("banded: need at least 3 sites, got %d", m)
	}
	if len(w) != m {
		return nil, fmt.Errorf("banded: got %d weights for %d sites", len(w), m)
	}

	n := m - 2
	stride := bandwidth + 1
	s := &System{
		n:         n,
		roughness: make([]float64, n*stride),
		fidelity:  make([]float64, n*stride),
	}

	for j := 0; j < n; j++ {
		s.roughness[j*stride] = 2 * (h[j] + h[j+1])
		if j+1 < n {
			s.roughness[j*stride+1] = h[j+1]
		}
	}

	// Row j of Qᵀ is (a[j], b[j], c[j]) at columns j, j+1, j+2.
	a := func(j int) float64 { return 1 / h[j] }
	b := func(j int) float64 { return -(1/h[j] + 1/h[j+1]) }
	c := func(j int) float64 { return 1 / h[j+1] }

	for j := 0; j < n; j++ {
		w0, w1, w2 := 1/w[j], 1/w[j+1], 1/w[j+2]
		aj, bj, cj := a(j), b(j), c(j)
		s.fidelity[j*stride] = aj*aj*w0 + bj*bj*w1 + cj*cj*w2
		if j+1 < n {
			s.fidelity[j*stride+1] = bj*a(j+1)*w1 + cj*b(j+1)*w2
		}
		if j+2 < n {
			s.fidelity[j*stride+2] = cj * a(j+2) * w2
		}
	}

	return s, nil
}

// Size returns the order of the system (m-2).
func (s *System) Size() int {
	return s.n
}

// RoughnessTrace returns tr(R).
func (s *System) RoughnessTrace() float64 {
	return diagonalSum(s.roughness, s.n)
}

// FidelityTrace returns tr(QᵀW⁻¹Q).
func (s *System) FidelityTrace() float64 {
	return diagonalSum(s.fidelity, s.n)
}

// Roughness returns R as a symmetric band matrix.
func (s *System) Roughness() *mat.SymBandDense {
	return s.band(s.roughness)
}

// Fidelity returns QᵀW⁻¹Q as a symmetric band matrix.
func (s *System) Fidelity() *mat.SymBandDense {
	return s.band(s.fidelity)
}

// Combined returns 6(1-p)·QᵀW⁻¹Q + p·R.
func (s *System) Combined(p float64) *mat.SymBandDense {
	data := make([]float64, len(s.fidelity))
	fq := 6 * (1 - p)
	for i := range data {
		data[i] = fq*s.fidelity[i] + p*s.roughness[i]
	}
	return s.band(data)
}

// band packs stride-3 band storage into a SymBandDense. Systems smaller than
// the full bandwidth are stored with k = n-1.
func (s *System) band(src []float64) *mat.SymBandDense {
	k := min(bandwidth, s.n-1)
	data := make([]float64, s.n*(k+1))
	for i := 0; i < s.n; i++ {
		copy(data[i*(k+1):(i+1)*(k+1)], src[i*(bandwidth+1):])
	}
	return mat.NewSymBandDense(s.n, k, data)
}

// Factor factors the combined system for smoothing parameter p.
func (s *System) Factor(p float64) (*Factor, error) {
	f := &Factor{n: s.n}
	if ok := f.chol.Factorize(s.Combined(p)); !ok {
		return nil, fmt.Errorf("%w (p=%g, n=%d)", ErrSingular, p, s.n)
	}
	return f, nil
}

// Factor is a band Cholesky factorization shared by all channels of a pass.
// It is read-only after construction.
type Factor struct {
	n    int
	chol mat.BandCholesky
}

// Solve solves A·X = B for every column of b at once. b must have Size() rows.
func (f *Factor) Solve(b *mat.Dense) (*mat.Dense, error) {
	r, _ := b.Dims()
	if r != f.n {
		return nil, fmt.Errorf("banded: right-hand side has %d rows, want %d", r, f.n)
	}

	var x mat.Dense
	if err := f.chol.SolveTo(&x, b); err != nil {
		// A condition warning still carries a valid solution.
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, err
		}
	}
	return &x, nil
}

func diagonalSum(band []float64, n int) float64 {
	var sum float64
	for i := 0; i < n; i++ {
		sum += band[i*(bandwidth+1)]
	}
	return sum
}
