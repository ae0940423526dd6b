package ppform

import (
	"math"
	"slices"

	"github.com/cwbudde/algo-spline/spline/ndarray"
)

// PPForm is a single-axis piecewise-polynomial model.
//
// Coefficients have shape (pieces, order, channels…) where channels are the
// dimensions of the fitted samples other than the fitted axis, in their
// original order.
type PPForm struct {
	breaks []float64
	coeffs *ndarray.Array
	axis   int
	shape  []int
}

// New validates and builds a PPForm. axis is normalized; shape is the full
// sample shape with shape[axis] == len(breaks). The model takes ownership of
// breaks and coeffs.
func New(breaks []float64, coeffs *ndarray.Array, axis int, shape []int) (*PPForm, error) {
	if err := validateBreaks(breaks); err != nil {
		return nil, err
	}
	if coeffs == nil || coeffs.Ndim() < 2 {
		return nil, errorf(ErrInvalidModel, "coefficients need at least 2 dims")
	}
	if coeffs.Dim(0) != len(breaks)-1 {
		return nil, errorf(ErrInvalidModel, "%d coefficient pieces for %d breaks", coeffs.Dim(0), len(breaks))
	}

	ax, err := ndarray.NormalizeAxis(axis, len(shape))
	if err != nil {
		return nil, errorf(ErrInvalidModel, "%v", err)
	}
	if shape[ax] != len(breaks) {
		return nil, errorf(ErrInvalidModel, "shape %v has %d sites on axis %d, breaks has %d", shape, shape[ax], ax, len(breaks))
	}
	channels := dropAxis(shape, ax)
	if !slices.Equal(channels, coeffs.Shape()[2:]) {
		return nil, errorf(ErrInvalidModel, "coefficient channels %v do not match shape %v", coeffs.Shape()[2:], channels)
	}

	return &PPForm{breaks: breaks, coeffs: coeffs, axis: ax, shape: slices.Clone(shape)}, nil
}

func validateBreaks(breaks []float64) error {
	if len(breaks) < 2 {
		return errorf(ErrInvalidModel, "need at least 2 breaks, got %d", len(breaks))
	}
	for i := 1; i < len(breaks); i++ {
		if !(breaks[i] > breaks[i-1]) || math.IsInf(breaks[i], 0) || math.IsInf(breaks[i-1], 0) {
			return errorf(ErrInvalidModel, "breaks not strictly increasing at %d", i)
		}
	}
	return nil
}

func dropAxis(shape []int, axis int) []int {
	out := make([]int, 0, len(shape)-1)
	out = append(out, shape[:axis]...)
	return append(out, shape[axis+1:]...)
}

// Breaks returns a copy of the breakpoints.
func (pp *PPForm) Breaks() []float64 { return slices.Clone(pp.breaks) }

// Coeffs returns a copy of the coefficient tensor.
func (pp *PPForm) Coeffs() *ndarray.Array { return pp.coeffs.Clone() }

// Order returns the polynomial order (degree + 1).
func (pp *PPForm) Order() int { return pp.coeffs.Dim(1) }

// Pieces returns the number of polynomial pieces.
func (pp *PPForm) Pieces() int { return len(pp.breaks) - 1 }

// Axis returns the normalized sample axis the model was fitted along.
func (pp *PPForm) Axis() int { return pp.axis }

// Shape returns the shape of the fitted samples.
func (pp *PPForm) Shape() []int { return slices.Clone(pp.shape) }

// Channels returns the sample dimensions other than the fitted axis.
func (pp *PPForm) Channels() []int { return dropAxis(pp.shape, pp.axis) }

// Domain returns the first and last break.
func (pp *PPForm) Domain() (lo, hi float64) {
	return pp.breaks[0], pp.breaks[len(pp.breaks)-1]
}

// Kind reports KindUnivariate.
func (pp *PPForm) Kind() Kind { return KindUnivariate }

// NumAxes returns 1.
func (pp *PPForm) NumAxes() int { return 1 }

// AxisBreaks returns the breaks; i must be 0.
func (pp *PPForm) AxisBreaks(int) []float64 { return pp.Breaks() }

// AxisOrder returns the order; i must be 0.
func (pp *PPForm) AxisOrder(int) int { return pp.Order() }

// AxisPieces returns the number of pieces; i must be 0.
func (pp *PPForm) AxisPieces(int) int { return pp.Pieces() }

func (pp *PPForm) block() block {
	return blockAt(pp.coeffs.Shape(), 0)
}

// withCoeffs returns a model sharing breaks and layout with new coefficient
// data of the given order.
func (pp *PPForm) withCoeffs(data []float64, order int) (*PPForm, error) {
	shape := pp.coeffs.Shape()
	shape[1] = order
	c, err := ndarray.FromSlice(data, shape...)
	if err != nil {
		return nil, errorf(ErrInvalidModel, "coefficients: %v", err)
	}
	return &PPForm{breaks: pp.breaks, coeffs: c, axis: pp.axis, shape: pp.shape}, nil
}

// Evaluate returns the model (or its derivative, see [WithNu]) at x. The
// result has the fitted sample shape with the fitted axis resized to len(x).
func (pp *PPForm) Evaluate(x []float64, opts ...EvalOption) (*ndarray.Array, error) {
	if len(x) == 0 {
		return nil, errorf(ErrQueryShape, "no query points")
	}
	cfg := applyEvalOptions(opts)
	nus, err := cfg.axisOrders(1)
	if err != nil {
		return nil, err
	}

	vals := evalBlock(pp.coeffs.Data(), pp.block(), pp.breaks, x, nus[0], cfg)

	front := append([]int{len(x)}, pp.Channels()...)
	out, err := ndarray.FromSlice(vals, front...)
	if err != nil {
		return nil, err
	}
	if pp.axis == 0 {
		return out, nil
	}
	perm, err := ndarray.MoveAxisPerm(out.Ndim(), pp.axis, 0)
	if err != nil {
		return nil, err
	}
	return out.Transpose(ndarray.InversePerm(perm)...)
}

// Derivative returns the nu-th derivative as a new model of order
// max(order-nu, 1).
func (pp *PPForm) Derivative(nu int) (*PPForm, error) {
	if nu < 0 {
		return nil, errorf(ErrDerivativeOrder, "order %d", nu)
	}
	data, order := derivativeBlock(pp.coeffs.Data(), pp.block(), nu)
	return pp.withCoeffs(data, order)
}

// Antiderivative returns the n-th antiderivative as a new model of order
// order+n. Each integration is continuous and zero at the first break.
func (pp *PPForm) Antiderivative(n int) (*PPForm, error) {
	if n < 0 {
		return nil, errorf(ErrDerivativeOrder, "antiderivative order %d", n)
	}
	data, order := antiderivativeBlock(pp.coeffs.Data(), pp.block(), pp.breaks, n)
	return pp.withCoeffs(data, order)
}

// Integrate returns the definite integral from a to b for every channel
// (row-major over [PPForm.Channels]). With extrapolation disabled the limits
// are clipped to the domain.
func (pp *PPForm) Integrate(a, b float64, opts ...EvalOption) ([]float64, error) {
	if math.IsNaN(a) || math.IsNaN(b) {
		return nil, errorf(ErrQueryShape, "NaN integration limit")
	}
	cfg := applyEvalOptions(opts)
	return integrateBlock(pp.coeffs.Data(), pp.block(), pp.breaks, a, b, cfg.extrapolate), nil
}
