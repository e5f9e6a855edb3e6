// SPDX-License-Identifier: MIT

// Package sparse - compressed row storage (CSR) & safe accessors.
//
// Purpose:
//   - Provide the sparse matrix collaborator consumed by the AMG core:
//     row/column counts, per-row nonzero iteration, matrix-vector products.
//   - Keep the sparsity pattern and the numeric values separable: a pattern
//     is fixed once (see PatternBuilder), values may be rewritten many times.
//   - Guarantee safety at the public surface: At/Set/AddTo return errors
//     instead of panicking.
//
// Layout:
//   - rowPtr has length n+1; the entries of row i live in
//     colIdx[rowPtr[i]:rowPtr[i+1]] and values[rowPtr[i]:rowPtr[i+1]].
//   - Column indices inside a row are strictly increasing, so lookups are
//     binary searches and iteration order is deterministic.
//
// Complexity quicksheet:
//   - At/Set/AddTo: O(log nnz(row)); Row: O(1); MulVec: O(nnz); Clone: O(nnz).

package sparse

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"
	ctxSet   = "Set"
	ctxAddTo = "AddTo"
	ctxRow   = "Row"
)

// Matrix is a real n×m sparse matrix in compressed row storage.
// The zero value is not usable; build matrices with PatternBuilder,
// FromTriplets or FromRows.
type Matrix struct {
	n, m   int       // row and column counts
	rowPtr []int     // len n+1, row offsets into colIdx/values
	colIdx []int     // len nnz, strictly increasing per row
	values []float64 // len nnz, numeric values aligned with colIdx

	validateNaNInf bool // reject NaN/Inf on Set/AddTo when true
}

var _ fmt.Stringer = (*Matrix)(nil)

// N returns the number of rows.
func (a *Matrix) N() int { return a.n }

// M returns the number of columns.
func (a *Matrix) M() int { return a.m }

// NNZ returns the number of stored entries (explicit zeros included).
func (a *Matrix) NNZ() int { return len(a.colIdx) }

// Square reports whether N() == M().
func (a *Matrix) Square() bool { return a.n == a.m }

// Row returns read-only views of the column indices and values of row i.
// The slices alias the matrix storage; callers must not modify cols.
// Writing to vals is allowed and updates the matrix in place.
//
// Complexity: O(1).
func (a *Matrix) Row(i int) (cols []int, vals []float64) {
	if i < 0 || i >= a.n {
		panic(sparseErrorf(ctxRow, i, 0, ErrOutOfRange))
	}
	lo, hi := a.rowPtr[i], a.rowPtr[i+1]

	return a.colIdx[lo:hi:hi], a.values[lo:hi:hi]
}

// RowOffset returns the position of row i's first entry in the flat storage.
// Entry positions are stable for the lifetime of the pattern and are used as
// edge indices by the matrix graph.
func (a *Matrix) RowOffset(i int) int { return a.rowPtr[i] }

// ValueAt returns the value stored at flat position pos (0 ≤ pos < NNZ).
func (a *Matrix) ValueAt(pos int) float64 { return a.values[pos] }

// position returns the flat offset of (i,j) within the pattern.
func (a *Matrix) position(i, j int) (int, error) {
	if i < 0 || i >= a.n || j < 0 || j >= a.m {
		return 0, ErrOutOfRange
	}
	lo, hi := a.rowPtr[i], a.rowPtr[i+1]
	k := lo + sort.SearchInts(a.colIdx[lo:hi], j)
	if k == hi || a.colIdx[k] != j {
		return 0, ErrNotInPattern
	}

	return k, nil
}

// Has reports whether (i,j) belongs to the sparsity pattern.
func (a *Matrix) Has(i, j int) bool {
	_, err := a.position(i, j)

	return err == nil
}

// At returns A[i,j]. Positions outside the pattern read as 0.
// Errors: ErrOutOfRange for invalid indices.
func (a *Matrix) At(i, j int) (float64, error) {
	k, err := a.position(i, j)
	switch {
	case err == nil:
		return a.values[k], nil
	case errors.Is(err, ErrNotInPattern):
		return 0, nil
	default:
		return 0, sparseErrorf(ctxAt, i, j, err)
	}
}

// Diagonal returns A[i,i], or 0 when the diagonal entry is not stored.
func (a *Matrix) Diagonal(i int) float64 {
	k, err := a.position(i, i)
	if err != nil {
		return 0
	}

	return a.values[k]
}

// Set overwrites A[i,j] = v. The entry must be part of the pattern.
// Errors: ErrOutOfRange, ErrNotInPattern, ErrNaNInf.
func (a *Matrix) Set(i, j int, v float64) error {
	k, err := a.position(i, j)
	if err != nil {
		return sparseErrorf(ctxSet, i, j, err)
	}
	if a.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return sparseErrorf(ctxSet, i, j, ErrNaNInf)
	}
	a.values[k] = v

	return nil
}

// AddTo accumulates A[i,j] += v. The entry must be part of the pattern.
// Errors: ErrOutOfRange, ErrNotInPattern, ErrNaNInf.
func (a *Matrix) AddTo(i, j int, v float64) error {
	k, err := a.position(i, j)
	if err != nil {
		return sparseErrorf(ctxAddTo, i, j, err)
	}
	if a.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return sparseErrorf(ctxAddTo, i, j, ErrNaNInf)
	}
	a.values[k] += v

	return nil
}

// Zero resets every stored value to 0 and keeps the pattern.
func (a *Matrix) Zero() {
	for k := range a.values {
		a.values[k] = 0
	}
}

// Clone returns a deep copy with an independent pattern and values.
func (a *Matrix) Clone() *Matrix {
	return &Matrix{
		n:              a.n,
		m:              a.m,
		rowPtr:         append([]int(nil), a.rowPtr...),
		colIdx:         append([]int(nil), a.colIdx...),
		values:         append([]float64(nil), a.values...),
		validateNaNInf: a.validateNaNInf,
	}
}

// String renders the matrix densely, one row per line. Diagnostics only.
func (a *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < a.n; i++ {
		sb.WriteString("[")
		lo, hi := a.rowPtr[i], a.rowPtr[i+1]
		k := lo
		for j := 0; j < a.m; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			if k < hi && a.colIdx[k] == j {
				fmt.Fprintf(&sb, "%g", a.values[k])
				k++
			} else {
				sb.WriteString("0")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
