// SPDX-License-Identifier: MIT

// Package smoother provides point relaxation methods used as pre- and
// post-smoothers of the multigrid levels.
//
// Every smoother is a linop.Preconditioner: Apply(v, d) runs Args.Iterations
// relaxation sweeps for A w = d starting from w = 0 and adds w to v.
// Pre and Post are no-ops for the point smoothers.
package smoother

import (
	"fmt"
	"math"

	"github.com/katalvlaran/paamg/linop"
	"github.com/katalvlaran/paamg/sparse"
	"gonum.org/v1/gonum/floats"
)

// Smoother is a relaxation method bound to one operator.
type Smoother interface {
	linop.Preconditioner
}

// Args are the smoother construction arguments. The hierarchy passes them
// through unchanged to every level.
type Args struct {
	Iterations       int     // sweeps per Apply, default 1
	RelaxationFactor float64 // ω, default 1
}

// DefaultArgs returns one sweep with ω = 1.
func DefaultArgs() Args { return Args{Iterations: 1, RelaxationFactor: 1} }

// Validate checks Iterations ≥ 1 and ω ∈ (0,2).
func (a Args) Validate() error {
	if a.Iterations < 1 {
		return fmt.Errorf("Args.Validate: iterations=%d: %w", a.Iterations, ErrInvalidArgs)
	}
	if !(a.RelaxationFactor > 0 && a.RelaxationFactor < 2) {
		return fmt.Errorf("Args.Validate: relaxation=%g: %w", a.RelaxationFactor, ErrInvalidArgs)
	}

	return nil
}

// Kind selects a relaxation method.
type Kind int

const (
	KindJacobi Kind = iota
	KindGaussSeidel
	KindSSOR
)

func (k Kind) String() string {
	switch k {
	case KindJacobi:
		return "jacobi"
	case KindGaussSeidel:
		return "gauss-seidel"
	case KindSSOR:
		return "ssor"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a configuration name to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "jacobi":
		return KindJacobi, nil
	case "gauss-seidel", "gs", "sor":
		return KindGaussSeidel, nil
	case "ssor":
		return KindSSOR, nil
	default:
		return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
	}
}

// Constructor builds a smoother for the operator of one level.
type Constructor func(op linop.Operator) (Smoother, error)

// NewConstructor binds kind and args into a Constructor.
func NewConstructor(kind Kind, args Args) Constructor {
	return func(op linop.Operator) (Smoother, error) { return New(kind, op, args) }
}

// New returns a smoother of the given kind for op.
// Errors: ErrNilOperator, ErrInvalidArgs, ErrZeroDiagonal, ErrUnknownKind.
func New(kind Kind, op linop.Operator, args Args) (Smoother, error) {
	if op == nil {
		return nil, fmt.Errorf("smoother.New: %w", ErrNilOperator)
	}
	if err := args.Validate(); err != nil {
		return nil, err
	}
	base, err := newRelaxation(op.Matrix(), args)
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindJacobi:
		return &Jacobi{relaxation: base, tmp: make([]float64, op.RangeSize())}, nil
	case KindGaussSeidel:
		return &GaussSeidel{relaxation: base}, nil
	case KindSSOR:
		return &SSOR{relaxation: base}, nil
	default:
		return nil, fmt.Errorf("smoother.New(%v): %w", kind, ErrUnknownKind)
	}
}

// relaxation holds what every point smoother needs.
type relaxation struct {
	a    *sparse.Matrix
	inv  []float64 // 1 / a_ii
	args Args
	w    []float64 // iterate of the current Apply
}

func newRelaxation(a *sparse.Matrix, args Args) (relaxation, error) {
	inv := make([]float64, a.N())
	for i := range inv {
		d := a.Diagonal(i)
		if d == 0 || math.IsNaN(d) {
			return relaxation{}, fmt.Errorf("smoother: row %d: %w", i, ErrZeroDiagonal)
		}
		inv[i] = 1 / d
	}

	return relaxation{a: a, inv: inv, args: args, w: make([]float64, a.N())}, nil
}

func (r *relaxation) Pre(_, _ []float64) {}
func (r *relaxation) Post(_ []float64)   {}

// sweepRow relaxes unknown i of w in place against d.
func (r *relaxation) sweepRow(i int, d []float64) {
	cols, vals := r.a.Row(i)
	s := d[i]
	for k, j := range cols {
		s -= vals[k] * r.w[j]
	}
	r.w[i] += r.args.RelaxationFactor * r.inv[i] * s
}

// Jacobi is damped point Jacobi.
type Jacobi struct {
	relaxation
	tmp []float64
}

// Apply adds Iterations damped Jacobi sweeps from zero to v.
func (s *Jacobi) Apply(v, d []float64) {
	sparse.Zero(s.w)
	for it := 0; it < s.args.Iterations; it++ {
		// tmp = d − A w
		copy(s.tmp, d)
		if err := s.a.MulVecAdd(s.tmp, -1, s.w); err != nil {
			panic(fmt.Errorf("Jacobi.Apply: %w", err))
		}
		floats.Mul(s.tmp, s.inv)
		floats.AddScaled(s.w, s.args.RelaxationFactor, s.tmp)
	}
	floats.Add(v, s.w)
}

// GaussSeidel is forward successive over-relaxation (plain Gauss–Seidel for ω = 1).
type GaussSeidel struct{ relaxation }

// Apply adds Iterations forward sweeps from zero to v.
func (s *GaussSeidel) Apply(v, d []float64) {
	sparse.Zero(s.w)
	n := len(s.w)
	for it := 0; it < s.args.Iterations; it++ {
		for i := 0; i < n; i++ {
			s.sweepRow(i, d)
		}
	}
	floats.Add(v, s.w)
}

// SSOR is symmetric SOR: a forward sweep followed by a backward sweep.
// It keeps a symmetric operator symmetric, which matters inside CG.
type SSOR struct{ relaxation }

// Apply adds Iterations symmetric sweeps from zero to v.
func (s *SSOR) Apply(v, d []float64) {
	sparse.Zero(s.w)
	n := len(s.w)
	for it := 0; it < s.args.Iterations; it++ {
		for i := 0; i < n; i++ {
			s.sweepRow(i, d)
		}
		for i := n - 1; i >= 0; i-- {
			s.sweepRow(i, d)
		}
	}
	floats.Add(v, s.w)
}
