// SPDX-License-Identifier: MIT

package sparse

import "gonum.org/v1/gonum/floats"

// Vectors are plain []float64; arithmetic is delegated to gonum/floats.
// The helpers below cover the few operations floats does not provide
// directly (zero-fill, capacity-reusing resize).

// Zero sets every element of v to 0.
func Zero(v []float64) {
	for i := range v {
		v[i] = 0
	}
}

// Resize returns a zeroed vector of length n, reusing v's storage when its
// capacity suffices.
func Resize(v []float64, n int) []float64 {
	if cap(v) < n {
		return make([]float64, n)
	}
	v = v[:n]
	Zero(v)

	return v
}

// Clone returns an independent copy of v.
func Clone(v []float64) []float64 {
	return append([]float64(nil), v...)
}

// Norm2 returns the Euclidean norm of v.
func Norm2(v []float64) float64 { return floats.Norm(v, 2) }

// ResizeInts returns v resized to n with every element set to fill,
// reusing v's storage when its capacity suffices.
func ResizeInts(v []int, n, fill int) []int {
	if cap(v) < n {
		v = make([]int, n)
	}
	v = v[:n]
	for i := range v {
		v[i] = fill
	}

	return v
}
