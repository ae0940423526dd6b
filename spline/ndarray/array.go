package ndarray

import (
	"errors"
	"fmt"
)

var (
	// ErrShape indicates an invalid shape or a shape/data size mismatch.
	ErrShape = errors.New("ndarray: invalid shape")
	// ErrAxis indicates an axis index outside [-ndim, ndim).
	ErrAxis = errors.New("ndarray: axis out of range")
	// ErrIndex indicates an element index outside the array bounds.
	ErrIndex = errors.New("ndarray: index out of range")
)

// Array is a row-major N-dimensional array of float64 values.
type Array struct {
	shape []int
	data  []float64
}

// New returns a zero-filled array with the given shape.
func New(shape ...int) (*Array, error) {
	n, err := sizeOf(shape)
	if err != nil {
		return nil, err
	}

	return &Array{shape: cloneInts(shape), data: make([]float64, n)}, nil
}

// FromSlice wraps data with the given shape. The slice is not copied.
func FromSlice(data []float64, shape ...int) (*Array, error) {
	n, err := sizeOf(shape)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, fmt.Errorf("%w: shape %v needs %d values, got %d", ErrShape, shape, n, len(data))
	}

	return &Array{shape: cloneInts(shape), data: data}, nil
}

// Vector returns a 1-D array holding a copy of values.
func Vector(values []float64) *Array {
	return &Array{shape: []int{len(values)}, data: append([]float64(nil), values...)}
}

// FromRows builds a 2-D array from equally long rows.
func FromRows(rows [][]float64) (*Array, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrShape)
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrShape, i, len(r), cols)
		}
		data = append(data, r...)
	}

	return FromSlice(data, len(rows), cols)
}

// Shape returns a copy of the array shape.
func (a *Array) Shape() []int {
	return cloneInts(a.shape)
}

// Dim returns the length of axis i. Negative indices count from the end.
func (a *Array) Dim(i int) int {
	if i < 0 {
		i += len(a.shape)
	}
	return a.shape[i]
}

// Ndim returns the number of dimensions.
func (a *Array) Ndim() int {
	return len(a.shape)
}

// Size returns the number of elements.
func (a *Array) Size() int {
	return len(a.data)
}

// Data returns the underlying row-major storage.
func (a *Array) Data() []float64 {
	return a.data
}

// Clone returns a deep copy.
func (a *Array) Clone() *Array {
	return &Array{shape: cloneInts(a.shape), data: append([]float64(nil), a.data...)}
}

// At returns the element at the given multi-index.
func (a *Array) At(idx ...int) (float64, error) {
	off, err := a.offset(idx)
	if err != nil {
		return 0, err
	}
	return a.data[off], nil
}

// Set stores v at the given multi-index.
func (a *Array) Set(v float64, idx ...int) error {
	off, err := a.offset(idx)
	if err != nil {
		return err
	}
	a.data[off] = v
	return nil
}

// Strides returns row-major element strides.
func (a *Array) Strides() []int {
	return Strides(a.shape)
}

func (a *Array) offset(idx []int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, fmt.Errorf("%w: got %d indices for %d dims", ErrIndex, len(idx), len(a.shape))
	}
	off := 0
	for i, v := range idx {
		if v < 0 || v >= a.shape[i] {
			return 0, fmt.Errorf("%w: index %d on axis %d of length %d", ErrIndex, v, i, a.shape[i])
		}
		off = off*a.shape[i] + v
	}
	return off, nil
}

// Strides returns row-major element strides for shape.
func Strides(shape []int) []int {
	if len(shape) == 0 {
		return nil
	}
	strides := make([]int, len(shape))
	strides[len(shape)-1] = 1
	for i := len(shape) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * shape[i+1]
	}
	return strides
}

// Prod returns the product of dims (1 for an empty list).
func Prod(dims []int) int {
	n := 1
	for _, d := range dims {
		n *= d
	}
	return n
}

func sizeOf(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, fmt.Errorf("%w: empty shape", ErrShape)
	}
	for i, d := range shape {
		if d <= 0 {
			return 0, fmt.Errorf("%w: dimension %d has length %d", ErrShape, i, d)
		}
	}
	return Prod(shape), nil
}

func cloneInts(s []int) []int {
	return append([]int(nil), s...)
}
