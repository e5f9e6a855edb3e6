// SPDX-License-Identifier: MIT

package amg

import (
	"fmt"
	"time"

	"github.com/katalvlaran/paamg/aggregation"
	"github.com/katalvlaran/paamg/linop"
	"github.com/katalvlaran/paamg/smoother"
)

// DefaultReduction is the reduction passed by AMGInverseOperator.Apply.
// The one-cycle solve ignores it.
const DefaultReduction = 1e-8

// CoarseSolverPolicy creates the solver of the coarse level system held by
// a transfer policy.
type CoarseSolverPolicy interface {
	CreateCoarseLevelSolver(p LevelTransferPolicy) (linop.InverseOperator, error)
}

// OneStepAMGCoarseSolverPolicy solves the coarse level with one cycle of an
// aggregation hierarchy built over the coarse operator.
type OneStepAMGCoarseSolverPolicy struct {
	kind smoother.Kind
	args smoother.Args
	crit aggregation.Criterion
	opts []Option
}

var _ CoarseSolverPolicy = (*OneStepAMGCoarseSolverPolicy)(nil)

// NewOneStepAMGCoarseSolverPolicy returns a policy building hierarchies with
// smoothers of kind/args and the coarsening criterion crit. opts are passed
// to every hierarchy it builds.
func NewOneStepAMGCoarseSolverPolicy(kind smoother.Kind, args smoother.Args, crit aggregation.Criterion, opts ...Option) *OneStepAMGCoarseSolverPolicy {
	return &OneStepAMGCoarseSolverPolicy{kind: kind, args: args, crit: crit, opts: opts}
}

// CreateCoarseLevelSolver builds the hierarchy over p's coarse operator and
// wraps it into an AMGInverseOperator.
// Errors: ErrNilArgument, ErrNoCoarseSystem, errors of NewAMG.
func (s *OneStepAMGCoarseSolverPolicy) CreateCoarseLevelSolver(p LevelTransferPolicy) (linop.InverseOperator, error) {
	const method = "OneStepAMGCoarseSolverPolicy.CreateCoarseLevelSolver"
	if p == nil || s.crit == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNilArgument)
	}
	op := p.CoarseLevelOperator()
	if op == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNoCoarseSystem)
	}

	cfg := newConfig(s.opts...)
	opts := append(append([]Option(nil), s.opts...), withLevel(cfg.level+1), withoutParallelInfo())

	h, err := NewAMG(op, s.crit, s.kind, s.args, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return NewAMGInverseOperator(h), nil
}

// inverseState is the lifecycle of an AMGInverseOperator.
type inverseState int

const (
	uninitialized inverseState = iota // no Pre issued yet
	active                            // Pre issued, Post pending
	closed                            // Post issued (or never needed)
)

// AMGInverseOperator applies exactly one cycle of a hierarchy per Apply.
//
// The first Apply issues the hierarchy's Pre with the given iterate and
// snapshots it; Close issues the matching Post with that snapshot. If Apply
// never ran, Close issues nothing. Close is idempotent; Apply after Close
// panics with ErrClosed.
type AMGInverseOperator struct {
	h        linop.Preconditioner
	state    inverseState
	snapshot []float64
}

var _ linop.InverseOperator = (*AMGInverseOperator)(nil)

// NewAMGInverseOperator wraps h. h must not be nil.
func NewAMGInverseOperator(h linop.Preconditioner) *AMGInverseOperator {
	if h == nil {
		panic(fmt.Errorf("NewAMGInverseOperator: %w", ErrNilArgument))
	}

	return &AMGInverseOperator{h: h}
}

// Hierarchy returns the wrapped hierarchy.
func (o *AMGInverseOperator) Hierarchy() linop.Preconditioner { return o.h }

// Apply runs one cycle with the default reduction.
func (o *AMGInverseOperator) Apply(x, b []float64, res *Result) {
	o.ApplyWithReduction(x, b, DefaultReduction, res)
}

// ApplyWithReduction runs one cycle of the hierarchy, adding the correction
// for b to x. The reduction is accepted for interface compatibility and
// does not change the work done.
func (o *AMGInverseOperator) ApplyWithReduction(x, b []float64, _ float64, res *Result) {
	start := time.Now()
	switch o.state {
	case closed:
		panic(fmt.Errorf("AMGInverseOperator.Apply: %w", ErrClosed))
	case uninitialized:
		o.h.Pre(x, b)
		o.snapshot = append(o.snapshot[:0], x...)
		o.state = active
	}
	o.h.Apply(x, b)
	if res != nil {
		res.Iterations++
		res.Elapsed += time.Since(start)
	}
}

// Close issues the pending Post, if any, and closes the hierarchy when it
// owns further solvers.
func (o *AMGInverseOperator) Close() error {
	if o.state == closed {
		return nil
	}
	if o.state == active {
		o.h.Post(o.snapshot)
	}
	o.state = closed
	if c, ok := o.h.(interface{ Close() error }); ok {
		return c.Close()
	}

	return nil
}

// Result aliases linop.Result for brevity in this package.
type Result = linop.Result
