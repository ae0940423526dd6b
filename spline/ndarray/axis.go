package ndarray

import "fmt"

// NormalizeAxis maps axis in [-ndim, ndim) to [0, ndim).
func NormalizeAxis(axis, ndim int) (int, error) {
	if axis < -ndim || axis >= ndim {
		return 0, fmt.Errorf("%w: axis %d for %d dims", ErrAxis, axis, ndim)
	}
	if axis < 0 {
		axis += ndim
	}
	return axis, nil
}

// Reshape returns an array sharing data with a under a new shape of equal size.
func (a *Array) Reshape(shape ...int) (*Array, error) {
	return FromSlice(a.data, shape...)
}

// Transpose returns a contiguous copy with axes reordered so that output
// axis i is input axis perm[i].
func (a *Array) Transpose(perm ...int) (*Array, error) {
	nd := len(a.shape)
	if len(perm) != nd {
		return nil, fmt.Errorf("%w: permutation %v for %d dims", ErrAxis, perm, nd)
	}
	seen := make([]bool, nd)
	for _, p := range perm {
		if p < 0 || p >= nd || seen[p] {
			return nil, fmt.Errorf("%w: invalid permutation %v", ErrAxis, perm)
		}
		seen[p] = true
	}

	inStrides := Strides(a.shape)
	outShape := make([]int, nd)
	srcStrides := make([]int, nd)
	for i, p := range perm {
		outShape[i] = a.shape[p]
		srcStrides[i] = inStrides[p]
	}

	out := &Array{shape: outShape, data: make([]float64, len(a.data))}
	if isIdentity(perm) {
		copy(out.data, a.data)
		return out, nil
	}

	// Walk the output in row-major order with an odometer over the source offsets.
	idx := make([]int, nd)
	src := 0
	for dst := range out.data {
		out.data[dst] = a.data[src]
		for ax := nd - 1; ax >= 0; ax-- {
			idx[ax]++
			src += srcStrides[ax]
			if idx[ax] < outShape[ax] {
				break
			}
			src -= srcStrides[ax] * outShape[ax]
			idx[ax] = 0
		}
	}
	return out, nil
}

// MoveAxis returns a contiguous copy with axis src moved to position dst and
// the remaining axes kept in order. Negative indices count from the end.
func (a *Array) MoveAxis(src, dst int) (*Array, error) {
	perm, err := MoveAxisPerm(len(a.shape), src, dst)
	if err != nil {
		return nil, err
	}
	return a.Transpose(perm...)
}

// MoveAxisPerm returns the permutation used by MoveAxis.
func MoveAxisPerm(ndim, src, dst int) ([]int, error) {
	s, err := NormalizeAxis(src, ndim)
	if err != nil {
		return nil, err
	}
	d, err := NormalizeAxis(dst, ndim)
	if err != nil {
		return nil, err
	}

	rest := make([]int, 0, ndim-1)
	for i := 0; i < ndim; i++ {
		if i != s {
			rest = append(rest, i)
		}
	}
	perm := make([]int, 0, ndim)
	perm = append(perm, rest[:d]...)
	perm = append(perm, s)
	perm = append(perm, rest[d:]...)
	return perm, nil
}

// InversePerm returns the permutation undoing perm.
func InversePerm(perm []int) []int {
	inv := make([]int, len(perm))
	for i, p := range perm {
		inv[p] = i
	}
	return inv
}

func isIdentity(perm []int) bool {
	for i, p := range perm {
		if i != p {
			return false
		}
	}
	return true
}
