package ppform

import (
	"math"
	"sort"

	"github.com/cwbudde/algo-spline/spline/ndarray"
)

// block addresses a (pieces, order) dimension pair inside a contiguous
// coefficient tensor of shape (outer…, pieces, order, inner…).
type block struct {
	outer, pieces, order, inner int
}

func blockAt(shape []int, pos int) block {
	return block{
		outer:  ndarray.Prod(shape[:pos]),
		pieces: shape[pos],
		order:  shape[pos+1],
		inner:  ndarray.Prod(shape[pos+2:]),
	}
}

func (b block) index(o, piece, k, a int) int {
	return ((o*b.pieces+piece)*b.order+k)*b.inner + a
}

// findPiece returns the piece containing x. Queries left of the first break
// map to piece 0, queries at or right of the last break to the last piece.
func findPiece(breaks []float64, x float64) int {
	i := sort.Search(len(breaks), func(j int) bool { return breaks[j] > x }) - 1
	if i < 0 {
		return 0
	}
	if i > len(breaks)-2 {
		return len(breaks) - 2
	}
	return i
}

// fallingFactorial returns n·(n-1)·…·(n-d+1).
func fallingFactorial(n, d int) float64 {
	f := 1.0
	for i := 0; i < d; i++ {
		f *= float64(n - i)
	}
	return f
}

// derivativeFactors returns the multipliers applied to the first order-nu
// coefficients when differentiating nu times.
func derivativeFactors(order, nu int) []float64 {
	if nu >= order {
		return nil
	}
	f := make([]float64, order-nu)
	for k := range f {
		f[k] = fallingFactorial(order-1-k, nu)
	}
	return f
}

// evalBlock contracts the (pieces, order) pair of b against query points x,
// producing a tensor of shape (outer, len(x), inner).
func evalBlock(data []float64, b block, breaks, x []float64, nu int, cfg evalConfig) []float64 {
	q := len(x)
	out := make([]float64, b.outer*q*b.inner)
	factors := derivativeFactors(b.order, nu)
	lo, hi := breaks[0], breaks[len(breaks)-1]

	for qi, xv := range x {
		var fill float64
		switch {
		case math.IsNaN(xv):
			fill = math.NaN()
		case !cfg.extrapolate && (xv < lo || xv > hi):
			fill = cfg.fill
		case factors == nil:
			fill = 0
		default:
			piece := findPiece(breaks, xv)
			t := xv - breaks[piece]
			for o := 0; o < b.outer; o++ {
				dst := out[(o*q+qi)*b.inner : (o*q+qi+1)*b.inner]
				for a := range dst {
					base := b.index(o, piece, 0, a)
					var v float64
					for k, f := range factors {
						v = v*t + data[base+k*b.inner]*f
					}
					dst[a] = v
				}
			}
			continue
		}
		for o := 0; o < b.outer; o++ {
			fillSlice(out[(o*q+qi)*b.inner:(o*q+qi+1)*b.inner], fill)
		}
	}
	return out
}

func fillSlice(dst []float64, v float64) {
	for i := range dst {
		dst[i] = v
	}
}

// derivativeBlock differentiates the pair nu times, returning the new data
// and order. Orders at or above the polynomial order give a single zero
// coefficient per piece.
func derivativeBlock(data []float64, b block, nu int) ([]float64, int) {
	if nu == 0 {
		return append([]float64(nil), data...), b.order
	}
	factors := derivativeFactors(b.order, nu)
	if factors == nil {
		return make([]float64, b.outer*b.pieces*b.inner), 1
	}

	nb := b
	nb.order = len(factors)
	out := make([]float64, nb.outer*nb.pieces*nb.order*nb.inner)
	for o := 0; o < b.outer; o++ {
		for p := 0; p < b.pieces; p++ {
			for k, f := range factors {
				src := b.index(o, p, k, 0)
				dst := nb.index(o, p, k, 0)
				for a := 0; a < b.inner; a++ {
					out[dst+a] = data[src+a] * f
				}
			}
		}
	}
	return out, nb.order
}

// antiderivativeBlock integrates the pair n times. Each integration adds one
// coefficient per piece and chooses the constants so that the result is
// continuous and zero at the first break.
func antiderivativeBlock(data []float64, b block, breaks []float64, n int) ([]float64, int) {
	cur := append([]float64(nil), data...)
	for ; n > 0; n-- {
		cur = integrateOnce(cur, b, breaks)
		b.order++
	}
	return cur, b.order
}

func integrateOnce(data []float64, b block, breaks []float64) []float64 {
	nb := b
	nb.order = b.order + 1
	out := make([]float64, nb.outer*nb.pieces*nb.order*nb.inner)

	for o := 0; o < b.outer; o++ {
		for p := 0; p < b.pieces; p++ {
			for k := 0; k < b.order; k++ {
				src := b.index(o, p, k, 0)
				dst := nb.index(o, p, k, 0)
				div := float64(b.order - k)
				for a := 0; a < b.inner; a++ {
					out[dst+a] = data[src+a] / div
				}
			}
		}

		// Constants: piece p starts where piece p-1 ends.
		for p := 1; p < b.pieces; p++ {
			h := breaks[p] - breaks[p-1]
			prev := nb.index(o, p-1, 0, 0)
			dst := nb.index(o, p, nb.order-1, 0)
			for a := 0; a < b.inner; a++ {
				var v float64
				for k := 0; k < nb.order; k++ {
					v = v*h + out[prev+k*nb.inner+a]
				}
				out[dst+a] = v
			}
		}
	}
	return out
}

// integrateBlock contracts the pair with the definite integral from lo to
// hi, producing a tensor of shape (outer, inner).
func integrateBlock(data []float64, b block, breaks []float64, lo, hi float64, extrapolate bool) []float64 {
	if !extrapolate {
		lo = clamp(lo, breaks[0], breaks[len(breaks)-1])
		hi = clamp(hi, breaks[0], breaks[len(breaks)-1])
	}
	anti, order := antiderivativeBlock(data, b, breaks, 1)
	ab := b
	ab.order = order

	vals := evalBlock(anti, ab, breaks, []float64{lo, hi}, 0, defaultEvalConfig())
	out := make([]float64, b.outer*b.inner)
	for o := 0; o < b.outer; o++ {
		for a := 0; a < b.inner; a++ {
			out[o*b.inner+a] = vals[(o*2+1)*b.inner+a] - vals[(o*2)*b.inner+a]
		}
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
