// SPDX-License-Identifier: MIT

package amg

import (
	"fmt"
	"math"

	"github.com/katalvlaran/paamg/linop"
	"github.com/katalvlaran/paamg/sparse"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DirectSolver solves the coarsest level exactly with a dense LU factorization.
type DirectSolver struct {
	lu mat.LU
	x  *mat.VecDense
	b  *mat.VecDense
}

var _ linop.Preconditioner = (*DirectSolver)(nil)

// NewDirectSolver factorizes a.
// Errors: ErrNilArgument, sparse.ErrNotSquare, ErrSingularCoarse.
func NewDirectSolver(a *sparse.Matrix) (*DirectSolver, error) {
	if a == nil {
		return nil, fmt.Errorf("NewDirectSolver: %w", ErrNilArgument)
	}
	if !a.Square() {
		return nil, fmt.Errorf("NewDirectSolver: %w", sparse.ErrNotSquare)
	}
	s := &DirectSolver{
		x: mat.NewVecDense(a.N(), nil),
		b: mat.NewVecDense(a.N(), nil),
	}
	s.lu.Factorize(a.ToDense())
	if c := s.lu.Cond(); math.IsInf(c, 1) || math.IsNaN(c) || c > mat.ConditionTolerance {
		return nil, fmt.Errorf("NewDirectSolver: condition %g: %w", c, ErrSingularCoarse)
	}

	return s, nil
}

func (s *DirectSolver) Pre(_, _ []float64) {}
func (s *DirectSolver) Post(_ []float64)   {}

// Apply adds A⁻¹d to v.
func (s *DirectSolver) Apply(v, d []float64) {
	if n := s.b.Len(); len(v) != n || len(d) != n {
		panic(fmt.Errorf("DirectSolver.Apply: n=%d: %w", n, ErrDimensionMismatch))
	}
	copy(s.b.RawVector().Data, d)
	if err := s.lu.SolveVecTo(s.x, false, s.b); err != nil {
		// ill-conditioning was rejected at construction; a Condition here
		// is a warning with a usable solution
		if _, ok := err.(mat.Condition); !ok {
			panic(fmt.Errorf("DirectSolver.Apply: %w", err))
		}
	}
	floats.Add(v, s.x.RawVector().Data)
}
