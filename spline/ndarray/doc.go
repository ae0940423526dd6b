// Package ndarray provides a minimal row-major N-dimensional float64 array
// used as the sample and coefficient container of the spline packages.
//
// Arrays are plain values: a shape and a contiguous data slice. Axis
// manipulation ([Array.MoveAxis], [Array.Transpose], [Array.Reshape]) always
// produces a new contiguous array; the inverse permutation restores the
// original layout exactly.
package ndarray
