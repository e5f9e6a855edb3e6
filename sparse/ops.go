// SPDX-License-Identifier: MIT

// Package sparse - kernels over CSR storage.
//
// Determinism & Policy:
//   - Every kernel walks rows in ascending order and entries in ascending
//     column order; results are bitwise reproducible for equal inputs.
//   - Vector lengths are validated once per call; kernels never allocate
//     except where a result matrix is returned.

package sparse

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// MulVec computes dst = A·x.
// Errors: ErrDimensionMismatch when len(x) != M() or len(dst) != N().
//
// Complexity: O(nnz).
func (a *Matrix) MulVec(dst, x []float64) error {
	if len(x) != a.m || len(dst) != a.n {
		return fmt.Errorf("MulVec: %w", ErrDimensionMismatch)
	}
	for i := 0; i < a.n; i++ {
		var s float64
		for k := a.rowPtr[i]; k < a.rowPtr[i+1]; k++ {
			s += a.values[k] * x[a.colIdx[k]]
		}
		dst[i] = s
	}

	return nil
}

// MulVecAdd computes dst += alpha·A·x.
// Errors: ErrDimensionMismatch when len(x) != M() or len(dst) != N().
//
// Complexity: O(nnz).
func (a *Matrix) MulVecAdd(dst []float64, alpha float64, x []float64) error {
	if len(x) != a.m || len(dst) != a.n {
		return fmt.Errorf("MulVecAdd: %w", ErrDimensionMismatch)
	}
	for i := 0; i < a.n; i++ {
		var s float64
		for k := a.rowPtr[i]; k < a.rowPtr[i+1]; k++ {
			s += a.values[k] * x[a.colIdx[k]]
		}
		dst[i] += alpha * s
	}

	return nil
}

// Residual computes dst = b − A·x.
// Errors: ErrDimensionMismatch on any length mismatch.
func (a *Matrix) Residual(dst, b, x []float64) error {
	if len(b) != a.n {
		return fmt.Errorf("Residual: %w", ErrDimensionMismatch)
	}
	if len(dst) != a.n {
		return fmt.Errorf("Residual: %w", ErrDimensionMismatch)
	}
	copy(dst, b)

	return a.MulVecAdd(dst, -1, x)
}

// Transpose returns Aᵀ as a new matrix.
//
// Complexity: O(nnz + n + m).
func (a *Matrix) Transpose() *Matrix {
	rowPtr := make([]int, a.m+1)
	for _, j := range a.colIdx {
		rowPtr[j+1]++
	}
	for j := 0; j < a.m; j++ {
		rowPtr[j+1] += rowPtr[j]
	}
	next := append([]int(nil), rowPtr[:a.m]...)
	colIdx := make([]int, len(a.colIdx))
	values := make([]float64, len(a.values))
	for i := 0; i < a.n; i++ { // ascending i keeps columns of Aᵀ sorted
		for k := a.rowPtr[i]; k < a.rowPtr[i+1]; k++ {
			j := a.colIdx[k]
			colIdx[next[j]] = i
			values[next[j]] = a.values[k]
			next[j]++
		}
	}

	return &Matrix{
		n:              a.m,
		m:              a.n,
		rowPtr:         rowPtr,
		colIdx:         colIdx,
		values:         values,
		validateNaNInf: a.validateNaNInf,
	}
}

// IsSymmetric reports whether |A[i,j] − A[j,i]| ≤ eps for all stored entries.
// Non-square matrices are never symmetric. A missing mirror entry reads as 0.
func (a *Matrix) IsSymmetric(eps float64) bool {
	if a.n != a.m {
		return false
	}
	for i := 0; i < a.n; i++ {
		for k := a.rowPtr[i]; k < a.rowPtr[i+1]; k++ {
			j := a.colIdx[k]
			if j == i {
				continue
			}
			mirror, _ := a.At(j, i)
			if math.Abs(a.values[k]-mirror) > eps {
				return false
			}
		}
	}

	return true
}

// IsStructurallySymmetric reports whether (i,j) in pattern ⇔ (j,i) in pattern.
func (a *Matrix) IsStructurallySymmetric() bool {
	if a.n != a.m {
		return false
	}
	for i := 0; i < a.n; i++ {
		for k := a.rowPtr[i]; k < a.rowPtr[i+1]; k++ {
			if !a.Has(a.colIdx[k], i) {
				return false
			}
		}
	}

	return true
}

// ToDense copies A into a gonum dense matrix (for direct factorizations
// and spectral checks on small systems).
//
// Complexity: O(n·m) memory, O(nnz) writes.
func (a *Matrix) ToDense() *mat.Dense {
	d := mat.NewDense(a.n, a.m, nil)
	for i := 0; i < a.n; i++ {
		for k := a.rowPtr[i]; k < a.rowPtr[i+1]; k++ {
			d.Set(i, a.colIdx[k], a.values[k])
		}
	}

	return d
}
