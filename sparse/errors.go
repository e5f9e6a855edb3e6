// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the sparse
// package. Algorithms return these sentinels (optionally wrapped with a method
// tag via %w) and tests check them with errors.Is.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrNotInPattern indicates a value write to a position that is not part
	// of the (already fixed) sparsity pattern.
	ErrNotInPattern = errors.New("sparse: entry not in sparsity pattern")

	// ErrDimensionMismatch indicates incompatible operand sizes (vectors or matrices).
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNotSquare signals that a square matrix was required.
	ErrNotSquare = errors.New("sparse: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Matrix was passed.
	ErrNilMatrix = errors.New("sparse: nil matrix")
)

// sparseErrorf tags err with the calling method and coordinates.
func sparseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}
