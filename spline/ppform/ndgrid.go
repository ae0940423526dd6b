package ppform

import (
	"math"
	"slices"

	"github.com/cwbudde/algo-spline/spline/ndarray"
)

// NdGridPPForm is a tensor-product piecewise-polynomial model over a
// rectangular grid. Coefficients have shape
// (pieces₀, order₀, …, pieces₍ₙ₋₁₎, order₍ₙ₋₁₎, channels…).
type NdGridPPForm struct {
	breaks [][]float64
	coeffs *ndarray.Array
	shape  []int
}

// NewNdGrid validates and builds a grid model from per-axis breaks and the
// coefficient tensor. The model takes ownership of its arguments.
func NewNdGrid(breaks [][]float64, coeffs *ndarray.Array) (*NdGridPPForm, error) {
	n := len(breaks)
	if n == 0 {
		return nil, errorf(ErrInvalidModel, "no grid axes")
	}
	if coeffs == nil || coeffs.Ndim() < 2*n {
		return nil, errorf(ErrInvalidModel, "coefficients need at least %d dims", 2*n)
	}

	cs := coeffs.Shape()
	shape := make([]int, 0, n+len(cs)-2*n)
	for i, b := range breaks {
		if err := validateBreaks(b); err != nil {
			return nil, errorf(ErrInvalidModel, "axis %d: %v", i, err)
		}
		if cs[2*i] != len(b)-1 {
			return nil, errorf(ErrInvalidModel, "axis %d: %d coefficient pieces for %d breaks", i, cs[2*i], len(b))
		}
		shape = append(shape, len(b))
	}
	shape = append(shape, cs[2*n:]...)

	return &NdGridPPForm{breaks: breaks, coeffs: coeffs, shape: shape}, nil
}

// Kind reports KindNdGrid.
func (g *NdGridPPForm) Kind() Kind { return KindNdGrid }

// NumAxes returns the number of grid axes.
func (g *NdGridPPForm) NumAxes() int { return len(g.breaks) }

// AxisBreaks returns a copy of the breaks of axis i.
func (g *NdGridPPForm) AxisBreaks(i int) []float64 { return slices.Clone(g.breaks[i]) }

// AxisOrder returns the polynomial order along axis i.
func (g *NdGridPPForm) AxisOrder(i int) int { return g.coeffs.Dim(2*i + 1) }

// AxisPieces returns the number of pieces along axis i.
func (g *NdGridPPForm) AxisPieces(i int) int { return len(g.breaks[i]) - 1 }

// Breaks returns copies of all per-axis breaks.
func (g *NdGridPPForm) Breaks() [][]float64 {
	out := make([][]float64, len(g.breaks))
	for i, b := range g.breaks {
		out[i] = slices.Clone(b)
	}
	return out
}

// Orders returns the per-axis polynomial orders.
func (g *NdGridPPForm) Orders() []int {
	out := make([]int, len(g.breaks))
	for i := range out {
		out[i] = g.AxisOrder(i)
	}
	return out
}

// Pieces returns the per-axis piece counts.
func (g *NdGridPPForm) Pieces() []int {
	out := make([]int, len(g.breaks))
	for i := range out {
		out[i] = g.AxisPieces(i)
	}
	return out
}

// Coeffs returns a copy of the coefficient tensor.
func (g *NdGridPPForm) Coeffs() *ndarray.Array { return g.coeffs.Clone() }

// Shape returns the fitted sample shape: the grid site counts followed by
// the channel dimensions.
func (g *NdGridPPForm) Shape() []int { return slices.Clone(g.shape) }

// Channels returns the trailing channel dimensions (empty for scalar grids).
func (g *NdGridPPForm) Channels() []int { return slices.Clone(g.shape[len(g.breaks):]) }

// Evaluate evaluates the model on the Cartesian grid spanned by xi, one
// query slice per axis. The result has shape (len(xi[0]), …, channels…).
func (g *NdGridPPForm) Evaluate(xi [][]float64, opts ...EvalOption) (*ndarray.Array, error) {
	n := len(g.breaks)
	if len(xi) != n {
		return nil, errorf(ErrQueryShape, "got %d query axes for %d grid axes", len(xi), n)
	}
	for i, x := range xi {
		if len(x) == 0 {
			return nil, errorf(ErrQueryShape, "axis %d has no query points", i)
		}
	}
	cfg := applyEvalOptions(opts)
	nus, err := cfg.axisOrders(n)
	if err != nil {
		return nil, err
	}

	// Fill applies to the whole point, so it is masked after contraction.
	contract := cfg
	contract.extrapolate = true
	data, shape := g.coeffs.Data(), g.coeffs.Shape()
	for i := 0; i < n; i++ {
		// Axes before i are already contracted to their query counts.
		b := blockAt(shape, i)
		data = evalBlock(data, b, g.breaks[i], xi[i], nus[i], contract)
		shape = slices.Concat(shape[:i], []int{len(xi[i])}, shape[i+2:])
	}
	if !cfg.extrapolate {
		g.maskOutside(data, xi, cfg.fill)
	}
	return ndarray.FromSlice(data, shape...)
}

// maskOutside sets every grid point with a coordinate outside the breaks to
// fill. Points with a NaN coordinate keep their NaN.
func (g *NdGridPPForm) maskOutside(data []float64, xi [][]float64, fill float64) {
	n := len(xi)
	inner := len(data)
	for _, x := range xi {
		inner /= len(x)
	}

	idx := make([]int, n)
	p := make([]float64, n)
	for off := 0; off < len(data); off += inner {
		for i := range p {
			p[i] = xi[i][idx[i]]
		}
		if nan, outside := g.locate(p); outside && !nan {
			fillSlice(data[off:off+inner], fill)
		}
		for i := n - 1; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(xi[i]) {
				break
			}
			idx[i] = 0
		}
	}
}

// locate reports whether p has a NaN coordinate and whether any coordinate
// lies outside its axis breaks.
func (g *NdGridPPForm) locate(p []float64) (nan, outside bool) {
	for i, x := range p {
		b := g.breaks[i]
		switch {
		case math.IsNaN(x):
			nan = true
		case x < b[0] || x > b[len(b)-1]:
			outside = true
		}
	}
	return nan, outside
}

// EvaluatePoints evaluates the model at scattered points, each holding one
// coordinate per grid axis. The result has shape (len(points), channels…).
// Each point only touches the coefficients of its own grid cell.
func (g *NdGridPPForm) EvaluatePoints(points [][]float64, opts ...EvalOption) (*ndarray.Array, error) {
	n := len(g.breaks)
	if len(points) == 0 {
		return nil, errorf(ErrQueryShape, "no query points")
	}
	cfg := applyEvalOptions(opts)
	nus, err := cfg.axisOrders(n)
	if err != nil {
		return nil, err
	}

	cell := newCellEvaluator(g, nus)
	size := cell.inner
	out := make([]float64, len(points)*size)
	for pi, p := range points {
		if len(p) != n {
			return nil, errorf(ErrQueryShape, "point %d has %d coordinates, want %d", pi, len(p), n)
		}
		dst := out[pi*size : (pi+1)*size]
		nan, outside := g.locate(p)
		switch {
		case nan:
			fillSlice(dst, math.NaN())
		case outside && !cfg.extrapolate:
			fillSlice(dst, cfg.fill)
		default:
			cell.eval(p, dst)
		}
	}
	return ndarray.FromSlice(out, append([]int{len(points)}, g.Channels()...)...)
}

// cellEvaluator contracts the coefficients of a single grid cell against
// one point. Scratch buffers are reused across points.
type cellEvaluator struct {
	breaks  [][]float64
	data    []float64
	strides []int // two per axis: piece, order
	factors [][]float64
	t       []float64
	scratch [][]float64
	inner   int
}

func newCellEvaluator(g *NdGridPPForm, nus []int) *cellEvaluator {
	n := len(g.breaks)
	shape := g.coeffs.Shape()
	c := &cellEvaluator{
		breaks:  g.breaks,
		data:    g.coeffs.Data(),
		strides: make([]int, 2*n),
		factors: make([][]float64, n),
		t:       make([]float64, n),
		scratch: make([][]float64, n),
		inner:   ndarray.Prod(shape[2*n:]),
	}
	s := c.inner
	for d := 2*n - 1; d >= 0; d-- {
		c.strides[d] = s
		s *= shape[d]
	}
	for i := range c.factors {
		c.factors[i] = derivativeFactors(shape[2*i+1], nus[i])
		c.scratch[i] = make([]float64, c.inner)
	}
	return c
}

// eval writes the value at p into dst (length inner).
func (c *cellEvaluator) eval(p, dst []float64) {
	off := 0
	for i, x := range p {
		piece := findPiece(c.breaks[i], x)
		c.t[i] = x - c.breaks[i][piece]
		off += piece * c.strides[2*i]
	}
	c.horner(0, off, dst)
}

func (c *cellEvaluator) horner(axis, off int, dst []float64) {
	if axis == len(c.factors) {
		copy(dst, c.data[off:off+c.inner])
		return
	}
	clear(dst)
	tmp, t := c.scratch[axis], c.t[axis]
	for k, f := range c.factors[axis] {
		c.horner(axis+1, off+k*c.strides[2*axis+1], tmp)
		for a := range dst {
			dst[a] = dst[a]*t + tmp[a]*f
		}
	}
}

// Derivative differentiates axis i nus[i] times.
func (g *NdGridPPForm) Derivative(nus ...int) (*NdGridPPForm, error) {
	return g.transform(nus, func(data []float64, b block, axis, nu int) ([]float64, int) {
		return derivativeBlock(data, b, nu)
	})
}

// Antiderivative integrates axis i nus[i] times. The result is zero on the
// lower boundary of every integrated axis.
func (g *NdGridPPForm) Antiderivative(nus ...int) (*NdGridPPForm, error) {
	return g.transform(nus, func(data []float64, b block, axis, nu int) ([]float64, int) {
		return antiderivativeBlock(data, b, g.breaks[axis], nu)
	})
}

func (g *NdGridPPForm) transform(nus []int, fn func([]float64, block, int, int) ([]float64, int)) (*NdGridPPForm, error) {
	if len(nus) != len(g.breaks) {
		return nil, errorf(ErrDerivativeOrder, "got %d orders for %d axes", len(nus), len(g.breaks))
	}
	data, shape := g.coeffs.Data(), g.coeffs.Shape()
	for i, nu := range nus {
		if nu < 0 {
			return nil, errorf(ErrDerivativeOrder, "axis %d: order %d", i, nu)
		}
		if nu == 0 {
			continue
		}
		var order int
		data, order = fn(data, blockAt(shape, 2*i), i, nu)
		shape[2*i+1] = order
	}

	c, err := ndarray.FromSlice(slices.Clone(data), shape...)
	if err != nil {
		return nil, err
	}
	return &NdGridPPForm{breaks: g.breaks, coeffs: c, shape: g.shape}, nil
}

// Integrate returns the integral over the box bounds[i] = {lo, hi} for every
// channel (row-major over [NdGridPPForm.Channels]).
func (g *NdGridPPForm) Integrate(bounds [][2]float64, opts ...EvalOption) ([]float64, error) {
	if len(bounds) != len(g.breaks) {
		return nil, errorf(ErrQueryShape, "got %d bounds for %d axes", len(bounds), len(g.breaks))
	}
	cfg := applyEvalOptions(opts)

	data, shape := g.coeffs.Data(), g.coeffs.Shape()
	for i, bd := range bounds {
		if math.IsNaN(bd[0]) || math.IsNaN(bd[1]) {
			return nil, errorf(ErrQueryShape, "axis %d: NaN integration limit", i)
		}
		// Previous axes are fully contracted, so axis i leads the tensor.
		data = integrateBlock(data, blockAt(shape, 0), g.breaks[i], bd[0], bd[1], cfg.extrapolate)
		shape = shape[2:]
	}
	return data, nil
}
