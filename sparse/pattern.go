// SPDX-License-Identifier: MIT

// Package sparse - pattern-first assembly.
//
// Two-phase construction:
//   - Phase 1 (PatternBuilder): collect the (row, col) positions that may hold
//     a value; Build freezes them into CSR with zero values.
//   - Phase 2 (Matrix.Set / Matrix.AddTo): write or accumulate values into the
//     frozen pattern. Values may be zeroed and refilled without reallocating.
//
// Coordinate assembly (FromTriplets) is a convenience composed of both phases;
// duplicate coordinates are summed.

package sparse

import (
	"fmt"
	"sort"
)

// PatternBuilder collects the sparsity pattern of an n×m matrix.
// Inserting the same position twice is harmless.
type PatternBuilder struct {
	n, m int
	rows [][]int
}

// NewPatternBuilder returns a builder for an n×m pattern.
// Errors: ErrInvalidDimensions when n <= 0 or m <= 0.
func NewPatternBuilder(n, m int) (*PatternBuilder, error) {
	if n <= 0 || m <= 0 {
		return nil, fmt.Errorf("NewPatternBuilder(%d,%d): %w", n, m, ErrInvalidDimensions)
	}

	return &PatternBuilder{n: n, m: m, rows: make([][]int, n)}, nil
}

// Insert adds position (i,j) to the pattern.
// Errors: ErrOutOfRange for invalid indices.
func (pb *PatternBuilder) Insert(i, j int) error {
	if i < 0 || i >= pb.n || j < 0 || j >= pb.m {
		return fmt.Errorf("PatternBuilder.Insert(%d,%d): %w", i, j, ErrOutOfRange)
	}
	pb.rows[i] = append(pb.rows[i], j)

	return nil
}

// Build freezes the pattern into a zero-valued *Matrix.
// Columns are sorted and deduplicated per row; the builder may be reused
// afterwards but further insertions do not affect the returned matrix.
//
// Complexity: O(nnz log nnz(row)).
func (pb *PatternBuilder) Build() (*Matrix, error) {
	rowPtr := make([]int, pb.n+1)
	total := 0
	for i := range pb.rows {
		total += len(pb.rows[i])
	}
	colIdx := make([]int, 0, total)

	for i, cols := range pb.rows {
		sorted := append([]int(nil), cols...)
		sort.Ints(sorted)
		last := -1
		for _, j := range sorted {
			if j == last {
				continue
			}
			colIdx = append(colIdx, j)
			last = j
		}
		rowPtr[i+1] = len(colIdx)
	}

	return &Matrix{
		n:              pb.n,
		m:              pb.m,
		rowPtr:         rowPtr,
		colIdx:         colIdx,
		values:         make([]float64, len(colIdx)),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// DefaultValidateNaNInf toggles finite-value validation for newly built matrices.
const DefaultValidateNaNInf = true

// FromTriplets assembles an n×m matrix from coordinate triplets.
// Duplicate (row, col) pairs are summed; explicit zeros are kept in the pattern.
// Errors: ErrInvalidDimensions, ErrDimensionMismatch (slice lengths differ),
// ErrOutOfRange, ErrNaNInf.
func FromTriplets(n, m int, rows, cols []int, vals []float64) (*Matrix, error) {
	if len(rows) != len(cols) || len(rows) != len(vals) {
		return nil, fmt.Errorf("FromTriplets: %w", ErrDimensionMismatch)
	}
	pb, err := NewPatternBuilder(n, m)
	if err != nil {
		return nil, err
	}
	for k := range rows {
		if err = pb.Insert(rows[k], cols[k]); err != nil {
			return nil, fmt.Errorf("FromTriplets: %w", err)
		}
	}
	a, err := pb.Build()
	if err != nil {
		return nil, err
	}
	for k := range rows {
		if err = a.AddTo(rows[k], cols[k], vals[k]); err != nil {
			return nil, fmt.Errorf("FromTriplets: %w", err)
		}
	}

	return a, nil
}

// FromRows builds a matrix from a dense row slice, storing only nonzeros
// plus the full diagonal of square matrices. Intended for tests and examples.
// Errors: ErrInvalidDimensions for empty input, ErrDimensionMismatch for
// ragged rows, ErrNaNInf for non-finite values.
func FromRows(data [][]float64) (*Matrix, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrInvalidDimensions)
	}
	n, m := len(data), len(data[0])
	var ri, ci []int
	var vi []float64
	for i, row := range data {
		if len(row) != m {
			return nil, fmt.Errorf("FromRows: row %d: %w", i, ErrDimensionMismatch)
		}
		for j, v := range row {
			if v != 0 || (i == j && n == m) {
				ri, ci, vi = append(ri, i), append(ci, j), append(vi, v)
			}
		}
	}

	return FromTriplets(n, m, ri, ci, vi)
}
