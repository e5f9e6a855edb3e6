// SPDX-License-Identifier: MIT

package amg

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/paamg/aggregation"
	"github.com/katalvlaran/paamg/linop"
	"github.com/katalvlaran/paamg/smoother"
)

// AMG is an aggregation multigrid hierarchy built as a recursive
// composition: every level but the coarsest is a TwoLevelMethod whose
// coarse solver is one cycle of the next AMG level.
//
// A level becomes the coarsest when it is the last level MaxLevel allows,
// when it has at most CoarsenTarget rows, or when aggregating it would
// reduce the row count by less than MinCoarsenRate. The coarsest level is a
// DirectSolver if it has at most CoarsenTarget rows and a SmoothingSolver
// otherwise.
type AMG struct {
	op       linop.Operator
	level    int
	smoother linop.Preconditioner // nil on the coarsest level
	twoLevel *TwoLevelMethod      // nil on the coarsest level
	coarsest linop.Preconditioner // nil above the coarsest level
}

var _ linop.Preconditioner = (*AMG)(nil)

// NewAMG builds the hierarchy over op. Smoothers are built from kind and
// args unless WithSmootherConstructor is given.
// Errors: ErrNilArgument, aggregation.ErrInvalidParameters, ErrSingularCoarse
// and the construction errors of the levels.
func NewAMG(op linop.Operator, crit aggregation.Criterion, kind smoother.Kind, args smoother.Args, opts ...Option) (*AMG, error) {
	const method = "NewAMG"
	if op == nil || crit == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNilArgument)
	}
	params := crit.Parameters()
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	cfg := newConfig(opts...)
	h := &AMG{op: op, level: cfg.level}
	rows := op.RangeSize()

	if rows <= params.CoarsenTarget {
		ds, err := NewDirectSolver(op.Matrix())
		if err != nil {
			return nil, fmt.Errorf("%s: level %d: %w", method, cfg.level, err)
		}
		cfg.logger.Debug("coarsest level", slog.Int("level", cfg.level), slog.Int("rows", rows))
		h.coarsest = ds

		return h, nil
	}

	ctor := cfg.ctor
	if ctor == nil {
		ctor = smoother.NewConstructor(kind, args)
	}
	sm, err := ctor(op)
	if err != nil {
		return nil, fmt.Errorf("%s: level %d: %w", method, cfg.level, err)
	}
	if cfg.level+1 >= params.MaxLevel {
		cfg.logger.Warn("maximum level reached above the coarsen target",
			slog.Int("level", cfg.level), slog.Int("rows", rows), slog.Int("target", params.CoarsenTarget))
		return h.smoothCoarsest(sm, cfg)
	}

	policy := NewAggregationLevelTransferPolicy(crit, cfg.pinfo)
	if err = policy.CreateCoarseLevelSystem(op); err != nil {
		return nil, fmt.Errorf("%s: level %d: %w", method, cfg.level, err)
	}
	if rate := policy.CoarseningRate(); rate < params.MinCoarsenRate {
		cfg.logger.Warn("insufficient coarsening",
			slog.Int("level", cfg.level),
			slog.Int("rows", rows),
			slog.Int("coarse", policy.CoarseLevelOperator().RangeSize()),
			slog.Float64("rate", rate),
			slog.Float64("min", params.MinCoarsenRate))
		return h.smoothCoarsest(sm, cfg)
	}

	coarsePolicy := NewOneStepAMGCoarseSolverPolicy(kind, args, crit, opts...)
	tl, err := NewTwoLevelMethod(op, sm, policy, coarsePolicy, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	h.smoother, h.twoLevel = sm, tl

	return h, nil
}

// smoothCoarsest makes h the coarsest level, solved by sweeps of sm.
func (h *AMG) smoothCoarsest(sm linop.Preconditioner, cfg config) (*AMG, error) {
	ss, err := NewSmoothingSolver(h.op, sm, cfg.coarsestSweeps)
	if err != nil {
		return nil, fmt.Errorf("NewAMG: level %d: %w", h.level, err)
	}
	cfg.logger.Debug("coarsest level",
		slog.Int("level", h.level), slog.Int("rows", h.op.RangeSize()), slog.Int("sweeps", cfg.coarsestSweeps))
	h.coarsest = ss

	return h, nil
}

// Pre issues the smoother's Pre on this level. Deeper levels receive theirs
// from their inverse operator on the first coarse solve.
func (h *AMG) Pre(x, b []float64) {
	if h.twoLevel == nil {
		h.coarsest.Pre(x, b)
		return
	}
	h.smoother.Pre(x, b)
	h.twoLevel.Pre(x, b)
}

// Apply adds one V-cycle correction for d to v.
func (h *AMG) Apply(v, d []float64) {
	if h.twoLevel == nil {
		h.coarsest.Apply(v, d)
		return
	}
	h.twoLevel.Apply(v, d)
}

// Post issues the smoother's Post on this level.
func (h *AMG) Post(x []float64) {
	if h.twoLevel == nil {
		h.coarsest.Post(x)
		return
	}
	h.twoLevel.Post(x)
	h.smoother.Post(x)
}

// Close releases the coarse solvers of all levels below this one.
func (h *AMG) Close() error {
	if h.twoLevel == nil {
		return nil
	}
	return h.twoLevel.Close()
}

// Level returns the depth of this level (0 for the finest).
func (h *AMG) Level() int { return h.level }

// IsCoarsest reports whether this level is the last one of the hierarchy.
func (h *AMG) IsCoarsest() bool { return h.twoLevel == nil }

// IsDirect reports whether this level is solved directly.
func (h *AMG) IsDirect() bool {
	_, ok := h.coarsest.(*DirectSolver)
	return ok
}

// Coarsest returns the last level of the hierarchy.
func (h *AMG) Coarsest() *AMG {
	cur := h
	for n := cur.next(); n != nil; n = cur.next() {
		cur = n
	}
	return cur
}

// next returns the hierarchy one level down, or nil.
func (h *AMG) next() *AMG {
	if h.twoLevel == nil {
		return nil
	}
	inv, ok := h.twoLevel.CoarseSolver().(*AMGInverseOperator)
	if !ok {
		return nil
	}
	n, _ := inv.Hierarchy().(*AMG)

	return n
}

// Levels returns the number of levels from this one down to the coarsest.
func (h *AMG) Levels() int {
	n := 0
	for cur := h; cur != nil; cur = cur.next() {
		n++
	}
	return n
}

// LevelSizes returns the row count of every level, finest first.
func (h *AMG) LevelSizes() []int {
	var sizes []int
	for cur := h; cur != nil; cur = cur.next() {
		sizes = append(sizes, cur.op.RangeSize())
	}
	return sizes
}
