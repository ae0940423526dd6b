package ndarray

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func arange(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

func TestNewRejectsBadShapes(t *testing.T) {
	for _, shape := range [][]int{nil, {0}, {3, -1}, {2, 0, 4}} {
		_, err := New(shape...)
		require.ErrorIs(t, err, ErrShape, "shape %v", shape)
	}
}

func TestFromSliceSizeMismatch(t *testing.T) {
	_, err := FromSlice(make([]float64, 5), 2, 3)
	require.ErrorIs(t, err, ErrShape)
}

func TestAtSetRowMajor(t *testing.T) {
	a, err := FromSlice(arange(24), 2, 3, 4)
	require.NoError(t, err)

	v, err := a.At(1, 2, 3)
	require.NoError(t, err)
	require.Equal(t, 23.0, v)

	v, err = a.At(1, 0, 2)
	require.NoError(t, err)
	require.Equal(t, 14.0, v)

	require.NoError(t, a.Set(-1, 0, 1, 0))
	require.Equal(t, -1.0, a.Data()[4])

	_, err = a.At(2, 0, 0)
	require.ErrorIs(t, err, ErrIndex)
	_, err = a.At(0, 0)
	require.ErrorIs(t, err, ErrIndex)
}

func TestFromRows(t *testing.T) {
	a, err := FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, a.Shape())
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, a.Data())

	_, err = FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, ErrShape)
}

func TestStrides(t *testing.T) {
	require.Equal(t, []int{12, 4, 1}, Strides([]int{2, 3, 4}))
	require.Equal(t, []int{1}, Strides([]int{7}))
	require.Nil(t, Strides(nil))
}

func TestNormalizeAxis(t *testing.T) {
	for _, tc := range []struct {
		axis, ndim, want int
	}{
		{0, 1, 0}, {-1, 1, 0}, {-1, 3, 2}, {-3, 3, 0}, {2, 3, 2},
	} {
		got, err := NormalizeAxis(tc.axis, tc.ndim)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}

	_, err := NormalizeAxis(3, 3)
	require.ErrorIs(t, err, ErrAxis)
	_, err = NormalizeAxis(-4, 3)
	require.ErrorIs(t, err, ErrAxis)
}

func TestTranspose2D(t *testing.T) {
	a, err := FromSlice(arange(6), 2, 3)
	require.NoError(t, err)

	tr, err := a.Transpose(1, 0)
	require.NoError(t, err)
	require.Equal(t, []int{3, 2}, tr.Shape())
	require.Equal(t, []float64{0, 3, 1, 4, 2, 5}, tr.Data())
}

func TestTransposeRejectsBadPermutation(t *testing.T) {
	a, err := FromSlice(arange(6), 2, 3)
	require.NoError(t, err)

	_, err = a.Transpose(0, 0)
	require.ErrorIs(t, err, ErrAxis)
	_, err = a.Transpose(0)
	require.ErrorIs(t, err, ErrAxis)
}

func TestMoveAxisRoundTrip(t *testing.T) {
	shape := []int{3, 4, 5, 2}
	a, err := FromSlice(arange(Prod(shape)), shape...)
	require.NoError(t, err)

	for src := -4; src < 4; src++ {
		front, err := a.MoveAxis(src, 0)
		require.NoError(t, err)

		ax, _ := NormalizeAxis(src, 4)
		require.Equal(t, shape[ax], front.Dim(0))

		back, err := front.MoveAxis(0, src)
		require.NoError(t, err)
		require.Equal(t, a.Shape(), back.Shape())
		require.Equal(t, a.Data(), back.Data())
	}
}

func TestMoveAxisMatchesAt(t *testing.T) {
	a, err := FromSlice(arange(24), 2, 3, 4)
	require.NoError(t, err)

	m, err := a.MoveAxis(2, 0)
	require.NoError(t, err)
	require.Equal(t, []int{4, 2, 3}, m.Shape())

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 4; k++ {
				want, _ := a.At(i, j, k)
				got, _ := m.At(k, i, j)
				require.Equal(t, want, got)
			}
		}
	}
}

func TestInversePerm(t *testing.T) {
	perm := []int{2, 0, 3, 1}
	inv := InversePerm(perm)
	for i, p := range perm {
		require.Equal(t, i, inv[p])
	}
}

func TestInversePermUndoesMoveAxis(t *testing.T) {
	shape := []int{2, 3, 4}
	a, err := FromSlice(arange(Prod(shape)), shape...)
	require.NoError(t, err)

	for src := 0; src < len(shape); src++ {
		perm, err := MoveAxisPerm(len(shape), src, 0)
		require.NoError(t, err)
		front, err := a.Transpose(perm...)
		require.NoError(t, err)

		back, err := front.Transpose(InversePerm(perm)...)
		require.NoError(t, err)
		require.Equal(t, a.Shape(), back.Shape())
		require.Equal(t, a.Data(), back.Data())
	}
}

func TestReshapeSharesData(t *testing.T) {
	a, err := FromSlice(arange(6), 6)
	require.NoError(t, err)

	r, err := a.Reshape(2, 3)
	require.NoError(t, err)
	r.Data()[0] = 42
	require.Equal(t, 42.0, a.Data()[0])

	_, err = a.Reshape(4, 2)
	require.ErrorIs(t, err, ErrShape)
}

func TestCloneIsDeep(t *testing.T) {
	a := Vector([]float64{1, 2, 3})
	c := a.Clone()
	c.Data()[0] = 9
	require.Equal(t, 1.0, a.Data()[0])
}
