// SPDX-License-Identifier: MIT

// Package linop - operator and solver contracts.
//
// Contract:
//   - Operator exposes the assembled matrix and y = Ax style kernels.
//   - Preconditioner.Apply ADDS an approximation of A⁻¹d to v; callers
//     zero v first when they need the plain approximation.
//   - InverseOperator owns setup state; Close releases it exactly once.

package linop

import (
	"fmt"

	"github.com/katalvlaran/paamg/sparse"
)

// Operator is an assembled linear operator A: Rⁿ → Rⁿ.
type Operator interface {
	// Matrix returns the underlying matrix; callers must not change its pattern.
	Matrix() *sparse.Matrix
	// Apply computes dst = A x.
	Apply(dst, x []float64)
	// ApplyScaleAdd computes dst += alpha·A x.
	ApplyScaleAdd(alpha float64, x, dst []float64)
	DomainSize() int
	RangeSize() int
}

// MatrixOperator wraps a square *sparse.Matrix.
type MatrixOperator struct {
	a *sparse.Matrix
}

var _ Operator = (*MatrixOperator)(nil)

// NewMatrixOperator wraps m. Errors: ErrNilOperator, ErrNotSquare.
func NewMatrixOperator(m *sparse.Matrix) (*MatrixOperator, error) {
	if m == nil {
		return nil, fmt.Errorf("NewMatrixOperator: %w", ErrNilOperator)
	}
	if !m.Square() {
		return nil, fmt.Errorf("NewMatrixOperator(%dx%d): %w", m.N(), m.M(), ErrNotSquare)
	}

	return &MatrixOperator{a: m}, nil
}

// Matrix returns the wrapped matrix.
func (o *MatrixOperator) Matrix() *sparse.Matrix { return o.a }

// Apply computes dst = A x. Panics on length mismatch (programmer error).
func (o *MatrixOperator) Apply(dst, x []float64) {
	if err := o.a.MulVec(dst, x); err != nil {
		panic(fmt.Errorf("MatrixOperator.Apply: %w", err))
	}
}

// ApplyScaleAdd computes dst += alpha·A x. Panics on length mismatch.
func (o *MatrixOperator) ApplyScaleAdd(alpha float64, x, dst []float64) {
	if err := o.a.MulVecAdd(dst, alpha, x); err != nil {
		panic(fmt.Errorf("MatrixOperator.ApplyScaleAdd: %w", err))
	}
}

func (o *MatrixOperator) DomainSize() int { return o.a.M() }
func (o *MatrixOperator) RangeSize() int  { return o.a.N() }
