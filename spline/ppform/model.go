package ppform

import (
	"fmt"

	"github.com/cwbudde/algo-spline/spline/ndarray"
)

// Kind identifies a PP model variant.
type Kind int

const (
	// KindUnivariate is a single-axis [PPForm].
	KindUnivariate Kind = iota
	// KindNdGrid is a tensor-product [NdGridPPForm].
	KindNdGrid
)

func (k Kind) String() string {
	switch k {
	case KindUnivariate:
		return "univariate"
	case KindNdGrid:
		return "ndgrid"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Model is the read-only capability set shared by both PP variants.
type Model interface {
	Kind() Kind
	NumAxes() int
	AxisBreaks(i int) []float64
	AxisOrder(i int) int
	AxisPieces(i int) int
	Coeffs() *ndarray.Array
	Shape() []int
}

// Evaluate evaluates any model on per-axis query points. Univariate models
// take exactly one query slice.
func Evaluate(m Model, xi [][]float64, opts ...EvalOption) (*ndarray.Array, error) {
	switch m.Kind() {
	case KindUnivariate:
		pp, ok := m.(*PPForm)
		if !ok {
			return nil, errorf(ErrInvalidModel, "univariate kind on %T", m)
		}
		if len(xi) != 1 {
			return nil, errorf(ErrQueryShape, "univariate model takes 1 query axis, got %d", len(xi))
		}
		return pp.Evaluate(xi[0], opts...)
	case KindNdGrid:
		g, ok := m.(*NdGridPPForm)
		if !ok {
			return nil, errorf(ErrInvalidModel, "ndgrid kind on %T", m)
		}
		return g.Evaluate(xi, opts...)
	default:
		return nil, errorf(ErrInvalidModel, "unknown kind %v", m.Kind())
	}
}

// Domain returns the [first, last] break of every axis.
func Domain(m Model) [][2]float64 {
	out := make([][2]float64, m.NumAxes())
	for i := range out {
		b := m.AxisBreaks(i)
		out[i] = [2]float64{b[0], b[len(b)-1]}
	}
	return out
}
