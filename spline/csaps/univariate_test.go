package csaps

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-spline/internal/testutil"
	"github.com/cwbudde/algo-spline/spline/ndarray"
	"github.com/cwbudde/algo-spline/spline/ppform"
)

func mustArray(t *testing.T, data []float64, shape ...int) *ndarray.Array {
	t.Helper()
	a, err := ndarray.FromSlice(data, shape...)
	require.NoError(t, err)
	return a
}

func TestFitInvalidData(t *testing.T) {
	ones := func(shape ...int) []float64 { return testutil.Ones(ndarray.Prod(shape)) }

	tests := []struct {
		name    string
		sites   []float64
		samples *ndarray.Array
		opts    []Option
		want    error
	}{
		{"one site", []float64{1}, ndarray.Vector([]float64{2}), nil, ErrShape},
		{"short samples", []float64{1, 2, 3}, ndarray.Vector([]float64{1, 2}), nil, ErrShape},
		{"nil samples", []float64{1, 2, 3}, nil, nil, ErrShape},
		{"few weights", []float64{1, 2, 3}, ndarray.Vector([]float64{1, 2, 3}), []Option{WithWeights([]float64{1, 1})}, ErrWeights},
		{"many weights", []float64{1, 2, 3}, ndarray.Vector([]float64{1, 2, 3}), []Option{WithWeights([]float64{1, 1, 1, 1})}, ErrWeights},
		{"zero weight", []float64{1, 2, 3}, ndarray.Vector([]float64{1, 2, 3}), []Option{WithWeights([]float64{1, 0, 1})}, ErrWeights},
		{"nan weight", []float64{1, 2, 3}, ndarray.Vector([]float64{1, 2, 3}), []Option{WithWeights([]float64{1, math.NaN(), 1})}, ErrWeights},
		{"2x4 samples", []float64{1, 2, 3}, mustArray(t, ones(2, 4), 2, 4), nil, ErrShape},
		{"2x4x5 samples", []float64{1, 2, 3}, mustArray(t, ones(2, 4, 5), 2, 4, 5), nil, ErrShape},
		{"2x4x3 weights", []float64{1, 2, 3}, mustArray(t, ones(2, 4, 3), 2, 4, 3), []Option{WithWeights(testutil.Ones(4))}, ErrWeights},
		{"axis out of range", []float64{1, 2, 3}, ndarray.Vector([]float64{1, 2, 3}), []Option{WithAxis(1)}, ErrShape},
		{"unordered sites", []float64{1, 3, 2}, ndarray.Vector([]float64{1, 2, 3}), nil, ErrNotIncreasing},
		{"repeated site", []float64{1, 2, 2}, ndarray.Vector([]float64{1, 2, 3}), nil, ErrNotIncreasing},
		{"infinite site", []float64{1, 2, math.Inf(1)}, ndarray.Vector([]float64{1, 2, 3}), nil, ErrShape},
		{"smooth above 1", []float64{1, 2, 3}, ndarray.Vector([]float64{1, 2, 3}), []Option{WithSmooth(1.5)}, ErrSmooth},
		{"negative smooth", []float64{1, 2, 3}, ndarray.Vector([]float64{1, 2, 3}), []Option{WithSmooth(-0.1)}, ErrSmooth},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Fit(tc.sites, tc.samples, tc.opts...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFitVectorize(t *testing.T) {
	// Samples are straight lines along the last axis, which every smoothing
	// parameter reproduces exactly.
	shapes := [][]int{
		{2}, {2, 2}, {3, 2}, {2, 2, 2},
		{3}, {2, 5}, {3, 3}, {2, 2, 3},
		{4}, {2, 4}, {3, 4}, {2, 2, 4}, {2, 3, 4}, {3, 2, 4}, {3, 3, 4},
		{2, 2, 2, 4}, {3, 2, 2, 4}, {3, 2, 3, 4}, {3, 3, 3, 4},
	}

	for _, shape := range shapes {
		n := shape[len(shape)-1]
		size := ndarray.Prod(shape)
		data := make([]float64, size)
		for i := range data {
			row, j := i/n, i%n
			data[i] = float64(row%3+2) + 2*float64(j)
		}
		samples := mustArray(t, data, shape...)
		x := testutil.Arange(n)

		s, err := Fit(x, samples)
		require.NoError(t, err, "shape %v", shape)

		got, err := s.Evaluate(x)
		require.NoError(t, err)
		require.Equal(t, shape, got.Shape())
		testutil.RequireAllClose(t, got.Data(), data, 1e-10, 1e-10)
	}
}

func permutations(p []int) [][]int {
	if len(p) <= 1 {
		return [][]int{append([]int(nil), p...)}
	}
	var out [][]int
	for i := range p {
		rest := append(append([]int(nil), p[:i]...), p[i+1:]...)
		for _, tail := range permutations(rest) {
			out = append(out, append([]int{p[i]}, tail...))
		}
	}
	return out
}

func TestFitAxis(t *testing.T) {
	shapes := [][]int{{2}, {4}}
	for _, base := range [][]int{{2, 4}, {3, 4, 5}, {3, 4, 5, 6}} {
		shapes = append(shapes, permutations(base)...)
	}

	for _, shape := range shapes {
		nd := len(shape)
		for axis := -nd; axis < nd; axis++ {
			data := testutil.Arange(ndarray.Prod(shape))
			samples := mustArray(t, data, shape...)
			ax := axis
			if ax < 0 {
				ax += nd
			}
			x := testutil.Arange(shape[ax])

			s, err := Fit(x, samples, WithAxis(axis))
			require.NoError(t, err, "shape %v axis %d", shape, axis)

			got, err := s.Evaluate(x)
			require.NoError(t, err)
			require.Equal(t, shape, got.Shape())
			testutil.RequireAllClose(t, got.Data(), data, 1e-10, 1e-9)

			require.Equal(t, ax, s.Axis())
			wantOrder := 4
			if len(x) < 3 {
				wantOrder = 2
			}
			require.Equal(t, wantOrder, s.Order())
			require.Equal(t, len(x)-1, s.Pieces())
			require.Equal(t, shape, s.Shape())
		}
	}
}

func TestFitZeroSmooth(t *testing.T) {
	x := []float64{1, 2, 4, 6}
	y := []float64{2, 4, 5, 7}

	s, err := FitSlice(x, y, WithSmooth(0))
	require.NoError(t, err)
	require.Equal(t, 0.0, s.Smooth())

	got, err := s.Evaluate(x)
	require.NoError(t, err)
	testutil.RequireAllClose(t, got.Data(), []float64{
		2.440677966101695, 3.355932203389830, 5.186440677966102, 7.016949152542373,
	}, 1e-12, 1e-12)
}

func TestFitNPoints(t *testing.T) {
	tests := []struct {
		name   string
		x, y   []float64
		xi     []float64
		wantYI []float64
	}{
		{
			name: "two points",
			x:    []float64{1, 2}, y: []float64{3, 4},
			xi: []float64{1, 1.5, 2}, wantYI: []float64{3, 3.5, 4},
		},
		{
			name: "three points",
			x:    []float64{1, 2, 3}, y: []float64{3, 4, 5},
			xi: []float64{1, 1.5, 2, 2.5, 3}, wantYI: []float64{3, 3.5, 4, 4.5, 5},
		},
		{
			name: "four points",
			x:    []float64{1, 2, 4, 6}, y: []float64{2, 4, 5, 7},
			xi: testutil.Linspace(1, 6, 10),
			wantYI: []float64{
				2.2579392157892, 3.0231172855707, 3.6937304019483,
				4.21971044584031, 4.65026761247821, 5.04804510368134,
				5.47288175793241, 5.94265482897362, 6.44293945952166,
				6.95847986982311,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := FitSlice(tc.x, tc.y)
			require.NoError(t, err)
			got, err := s.Evaluate(tc.xi)
			require.NoError(t, err)
			testutil.RequireAllClose(t, got.Data(), tc.wantYI, 1e-7, 0)
		})
	}
}

func TestFitWeighted(t *testing.T) {
	x := []float64{1, 2, 4, 6}
	y := []float64{2, 4, 5, 7}

	s, err := FitSlice(x, y, WithWeights([]float64{0.5, 1, 0.7, 1.2}))
	require.NoError(t, err)
	require.InDelta(t, 0.7356709372892785, s.Smooth(), 1e-12)

	got, err := s.Evaluate(testutil.Linspace(1, 6, 10))
	require.NoError(t, err)
	testutil.RequireAllClose(t, got.Data(), []float64{
		2.39572102230177, 3.13781163365086, 3.78568993197139,
		4.28992448591238, 4.7009959256016, 5.08290363789967,
		5.49673867759808, 5.9600748344541, 6.45698622142886,
		6.97068522346297,
	}, 1e-7, 0)
}

func TestFitTwoPoints(t *testing.T) {
	s, err := FitSlice([]float64{1, 3}, []float64{2, 6}, WithSmooth(0.2))
	require.NoError(t, err)
	require.Equal(t, 1.0, s.Smooth())
	require.Equal(t, 2, s.Order())
	require.Equal(t, 1, s.Pieces())
	require.Equal(t, []float64{2, 2}, s.Coeffs().Data())

	got, err := s.Evaluate([]float64{0, 2, 4})
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, got.Data(), []float64{0, 4, 8}, 1e-12)
}

func TestFitUnivariateFixture(t *testing.T) {
	fx := testutil.Univariate()

	s, err := FitSlice(fx.X, fx.Y)
	require.NoError(t, err)
	require.InDelta(t, fx.Smooth, s.Smooth(), 1e-12)

	yi, err := s.Evaluate(fx.XI)
	require.NoError(t, err)
	testutil.RequireAllClose(t, yi.Data(), fx.YI, 1e-7, 1e-10)

	d1, err := s.Evaluate(fx.XI, ppform.WithNu(1))
	require.NoError(t, err)
	testutil.RequireAllClose(t, d1.Data(), fx.YID1, 1e-7, 1e-10)

	d2, err := s.Evaluate(fx.XI, ppform.WithNu(2))
	require.NoError(t, err)
	testutil.RequireAllClose(t, d2.Data(), fx.YID2, 1e-7, 1e-10)

	anti, err := s.Antiderivative(1)
	require.NoError(t, err)
	ad1, err := anti.Evaluate(fx.XI)
	require.NoError(t, err)
	testutil.RequireAllClose(t, ad1.Data(), fx.YIAD1, 1e-7, 1e-10)

	lo, hi := s.Domain()
	integral, err := s.Integrate(lo, hi)
	require.NoError(t, err)
	require.InDelta(t, fx.Integral, integral[0], 1e-10)
}

// naturalSpline returns the coefficients of the natural cubic interpolant
// through (x, y) from its second derivatives at the sites.
func naturalSpline(x, y []float64) [][4]float64 {
	n := len(x)
	h := make([]float64, n-1)
	for i := range h {
		h[i] = x[i+1] - x[i]
	}

	// Tridiagonal system for the interior second derivatives.
	diag := make([]float64, n)
	rhs := make([]float64, n)
	sub := make([]float64, n)
	for i := 1; i < n-1; i++ {
		diag[i] = 2 * (h[i-1] + h[i])
		sub[i] = h[i-1]
		rhs[i] = 6 * ((y[i+1]-y[i])/h[i] - (y[i]-y[i-1])/h[i-1])
	}
	for i := 2; i < n-1; i++ {
		f := sub[i] / diag[i-1]
		diag[i] -= f * h[i-1]
		rhs[i] -= f * rhs[i-1]
	}
	m := make([]float64, n)
	for i := n - 2; i >= 1; i-- {
		m[i] = (rhs[i] - h[i]*m[i+1]) / diag[i]
	}

	out := make([][4]float64, n-1)
	for i := range out {
		out[i] = [4]float64{
			(m[i+1] - m[i]) / (6 * h[i]),
			m[i] / 2,
			(y[i+1]-y[i])/h[i] - h[i]*(2*m[i]+m[i+1])/6,
			y[i],
		}
	}
	return out
}

func TestFitNaturalSplineAtSmoothOne(t *testing.T) {
	x := testutil.Linspace(0, 5, 20)
	y := testutil.NoisySine(x, 1234, 0.3)

	s, err := FitSlice(x, y, WithSmooth(1))
	require.NoError(t, err)

	want := naturalSpline(x, y)
	got := s.Coeffs().Data()
	for i, piece := range want {
		testutil.RequireAllClose(t, got[i*4:(i+1)*4], piece[:], 1e-9, 1e-9)
	}

	ys, err := s.Evaluate(x)
	require.NoError(t, err)
	testutil.RequireAllClose(t, ys.Data(), y, 1e-10, 1e-10)
}

func TestFitChannelsMatchSeparateFits(t *testing.T) {
	x := testutil.Linspace(0, 2*math.Pi, 15)
	rows := make([][]float64, 3)
	for i := range rows {
		rows[i] = testutil.NoisySine(x, int64(i+1), 0.2)
	}
	samples, err := ndarray.FromRows(rows)
	require.NoError(t, err)
	w := testutil.Linspace(0.5, 1.5, 15)

	s, err := Fit(x, samples, WithWeights(w))
	require.NoError(t, err)
	require.Equal(t, []int{3}, s.Channels())

	xi := testutil.Linspace(-1, 7, 33)
	all, err := s.Evaluate(xi)
	require.NoError(t, err)
	require.Equal(t, []int{3, len(xi)}, all.Shape())

	for i, r := range rows {
		single, err := FitSlice(x, r, WithWeights(w))
		require.NoError(t, err)
		require.InDelta(t, single.Smooth(), s.Smooth(), 1e-15)

		want, err := single.Evaluate(xi)
		require.NoError(t, err)
		testutil.RequireAllClose(t, all.Data()[i*len(xi):(i+1)*len(xi)], want.Data(), 1e-12, 1e-12)
	}
}

func TestFitLeadingAxisMatchesTransposed(t *testing.T) {
	x := testutil.Linspace(-1, 1, 9)
	rows := [][]float64{testutil.NoisySine(x, 7, 0.1), testutil.NoisySine(x, 8, 0.1)}
	byRow, err := ndarray.FromRows(rows)
	require.NoError(t, err)
	byCol, err := byRow.Transpose(1, 0)
	require.NoError(t, err)

	a, err := Fit(x, byRow, WithSmooth(0.9))
	require.NoError(t, err)
	b, err := Fit(x, byCol, WithAxis(0), WithSmooth(0.9))
	require.NoError(t, err)
	require.Equal(t, 0, b.Axis())

	xi := testutil.Linspace(-1, 1, 5)
	va, err := a.Evaluate(xi)
	require.NoError(t, err)
	vb, err := b.Evaluate(xi)
	require.NoError(t, err)
	require.Equal(t, []int{5, 2}, vb.Shape())

	vbT, err := vb.Transpose(1, 0)
	require.NoError(t, err)
	testutil.RequireAllClose(t, vbT.Data(), va.Data(), 1e-12, 1e-12)
}

func TestFitDoesNotAliasInputs(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{0, 1, 0, 1}

	s, err := FitSlice(x, y, WithSmooth(1))
	require.NoError(t, err)
	x[0], y[0] = -10, 100

	require.Equal(t, 0.0, s.Breaks()[0])
	got, err := s.Evaluate([]float64{0})
	require.NoError(t, err)
	require.InDelta(t, 0.0, got.Data()[0], 1e-12)
}
