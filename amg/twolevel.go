// SPDX-License-Identifier: MIT

package amg

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/paamg/aggregation"
	"github.com/katalvlaran/paamg/linop"
	"github.com/katalvlaran/paamg/sparse"
	"gonum.org/v1/gonum/floats"
)

// TwoLevelMethod is the two-level preconditioner: smoothing on the fine
// operator around one coarse level correction.
//
// The coarse system and its solver are built at most once, in NewTwoLevelMethod.
// Apply never rebuilds them. The fine operator and the smoother are shared
// and must outlive the method; a TwoLevelMethod is not safe for concurrent use.
type TwoLevelMethod struct {
	op       linop.Operator
	smoother linop.Preconditioner
	policy   LevelTransferPolicy
	coarse   linop.InverseOperator

	preSteps, postSteps int
	level               int
	logger              *slog.Logger
	observer            Observer

	defect []float64 // working defect
	update []float64 // correction of the current step
	res    linop.Result
}

var _ linop.Preconditioner = (*TwoLevelMethod)(nil)

// statsReporter is implemented by policies that report aggregation counts.
type statsReporter interface {
	Stats() aggregation.Stats
}

// NewTwoLevelMethod creates the coarse level system of op through policy
// and its solver through coarsePolicy. A policy whose coarse level operator
// already exists is used as is; its system must have been built over op.
// Errors: ErrNilArgument and the construction errors of both policies.
func NewTwoLevelMethod(
	op linop.Operator,
	sm linop.Preconditioner,
	policy LevelTransferPolicy,
	coarsePolicy CoarseSolverPolicy,
	opts ...Option,
) (*TwoLevelMethod, error) {
	const method = "NewTwoLevelMethod"
	if op == nil || sm == nil || policy == nil || coarsePolicy == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNilArgument)
	}
	cfg := newConfig(opts...)

	if policy.CoarseLevelOperator() == nil {
		if err := policy.CreateCoarseLevelSystem(op); err != nil {
			return nil, fmt.Errorf("%s: level %d: %w", method, cfg.level, err)
		}
	}
	fineN, coarseN := op.RangeSize(), policy.CoarseLevelOperator().RangeSize()
	var stats aggregation.Stats
	if r, ok := policy.(statsReporter); ok {
		stats = r.Stats()
	}
	cfg.logger.Info("coarse level built",
		slog.Int("level", cfg.level),
		slog.Int("fine", fineN),
		slog.Int("coarse", coarseN),
		slog.Int("aggregates", stats.Aggregates),
		slog.Int("isolated", stats.Isolated),
		slog.Int("one", stats.OneNode),
		slog.Int("skipped", stats.Skipped),
	)
	cfg.observer.OnCoarseLevel(cfg.level, fineN, coarseN, stats)

	coarse, err := coarsePolicy.CreateCoarseLevelSolver(policy)
	if err != nil {
		return nil, fmt.Errorf("%s: level %d: %w", method, cfg.level, err)
	}

	return &TwoLevelMethod{
		op:        op,
		smoother:  sm,
		policy:    policy,
		coarse:    coarse,
		preSteps:  cfg.preSteps,
		postSteps: cfg.postSteps,
		level:     cfg.level,
		logger:    cfg.logger,
		observer:  cfg.observer,
		defect:    make([]float64, fineN),
		update:    make([]float64, fineN),
	}, nil
}

// Pre is a no-op; setup happened at construction.
func (t *TwoLevelMethod) Pre(_, _ []float64) {}

// Post is a no-op.
func (t *TwoLevelMethod) Post(_ []float64) {}

// Apply adds one two-level correction for the defect d to v:
// pre-smoothing, restriction of the remaining defect, one coarse solve,
// prolongation and post-smoothing. d is not modified.
func (t *TwoLevelMethod) Apply(v, d []float64) {
	if len(v) != len(t.defect) || len(d) != len(t.defect) {
		panic(fmt.Errorf("TwoLevelMethod.Apply: len(v)=%d len(d)=%d n=%d: %w",
			len(v), len(d), len(t.defect), ErrDimensionMismatch))
	}
	copy(t.defect, d)

	for i := 0; i < t.preSteps; i++ {
		t.smooth(v)
	}

	t.policy.MoveToCoarseLevel(t.defect)
	t.coarse.Apply(t.policy.CoarseLevelLhs(), t.policy.CoarseLevelRhs(), &t.res)
	sparse.Zero(t.update)
	t.policy.MoveToFineLevel(t.update)
	t.correct(v)

	for i := 0; i < t.postSteps; i++ {
		t.smooth(v)
	}
	t.observer.OnApply(t.level)
}

// smooth computes one smoother update for the working defect and applies it.
func (t *TwoLevelMethod) smooth(v []float64) {
	sparse.Zero(t.update)
	t.smoother.Apply(t.update, t.defect)
	t.correct(v)
}

// correct adds the update to v and removes A·update from the working defect.
func (t *TwoLevelMethod) correct(v []float64) {
	floats.Add(v, t.update)
	t.op.ApplyScaleAdd(-1, t.update, t.defect)
}

// CoarseSolver returns the coarse level solver.
func (t *TwoLevelMethod) CoarseSolver() linop.InverseOperator { return t.coarse }

// TransferPolicy returns the transfer policy.
func (t *TwoLevelMethod) TransferPolicy() LevelTransferPolicy { return t.policy }

// CoarseApplications returns how many coarse solves have run.
func (t *TwoLevelMethod) CoarseApplications() int { return t.res.Iterations }

// Close releases the coarse solver; the coarse hierarchy receives its Post.
func (t *TwoLevelMethod) Close() error {
	return t.coarse.Close()
}
