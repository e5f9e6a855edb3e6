// SPDX-License-Identifier: MIT

package amg

import (
	"fmt"

	"github.com/katalvlaran/paamg/linop"
	"github.com/katalvlaran/paamg/sparse"
	"gonum.org/v1/gonum/floats"
)

// SmoothingSolver approximates the coarsest level solve with a fixed number
// of smoother sweeps. It takes the place of DirectSolver on a coarsest level
// that has more rows than the coarsen target, where a dense factorization
// would not pay off.
type SmoothingSolver struct {
	op       linop.Operator
	smoother linop.Preconditioner
	sweeps   int

	defect []float64
	update []float64
}

var _ linop.Preconditioner = (*SmoothingSolver)(nil)

// NewSmoothingSolver returns a solver running sweeps smoother steps per Apply.
// Errors: ErrNilArgument, ErrInvalidSweeps.
func NewSmoothingSolver(op linop.Operator, sm linop.Preconditioner, sweeps int) (*SmoothingSolver, error) {
	if op == nil || sm == nil {
		return nil, fmt.Errorf("NewSmoothingSolver: %w", ErrNilArgument)
	}
	if sweeps < 1 {
		return nil, fmt.Errorf("NewSmoothingSolver: sweeps=%d: %w", sweeps, ErrInvalidSweeps)
	}
	n := op.RangeSize()

	return &SmoothingSolver{
		op:       op,
		smoother: sm,
		sweeps:   sweeps,
		defect:   make([]float64, n),
		update:   make([]float64, n),
	}, nil
}

// Pre forwards to the smoother.
func (s *SmoothingSolver) Pre(x, b []float64) { s.smoother.Pre(x, b) }

// Post forwards to the smoother.
func (s *SmoothingSolver) Post(x []float64) { s.smoother.Post(x) }

// Apply adds the result of the sweeps for A u = d, started from u = 0, to v.
// d is not modified.
func (s *SmoothingSolver) Apply(v, d []float64) {
	if len(v) != len(s.defect) || len(d) != len(s.defect) {
		panic(fmt.Errorf("SmoothingSolver.Apply: len(v)=%d len(d)=%d n=%d: %w",
			len(v), len(d), len(s.defect), ErrDimensionMismatch))
	}
	copy(s.defect, d)
	for i := 0; i < s.sweeps; i++ {
		sparse.Zero(s.update)
		s.smoother.Apply(s.update, s.defect)
		floats.Add(v, s.update)
		s.op.ApplyScaleAdd(-1, s.update, s.defect)
	}
}

// Sweeps returns the number of smoother steps per Apply.
func (s *SmoothingSolver) Sweeps() int { return s.sweeps }
