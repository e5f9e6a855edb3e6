// SPDX-License-Identifier: MIT

// Package amg - functional options shared by TwoLevelMethod, AMG and
// OneStepAMGCoarseSolverPolicy.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs
//     (negative step counts, zero coarsest sweeps, nil logger/observer/constructor).
//   • Options given to a hierarchy are inherited by every coarser level.

package amg

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/paamg/linop"
	"github.com/katalvlaran/paamg/smoother"
)

// Default smoothing step counts.
const (
	DefaultPreSteps  = 1
	DefaultPostSteps = 1
	// DefaultCoarsestSweeps is the sweep count of a coarsest level too large
	// for the direct solver.
	DefaultCoarsestSweeps = 10
)

// Option customizes a two-level method or hierarchy.
type Option func(*config)

type config struct {
	preSteps, postSteps int
	coarsestSweeps      int
	logger              *slog.Logger
	observer            Observer
	pinfo               linop.ParallelInformation
	ctor                smoother.Constructor // overrides kind/args when set

	level int // depth of the fine level of this method
}

func newConfig(opts ...Option) config {
	cfg := config{
		preSteps:       DefaultPreSteps,
		postSteps:      DefaultPostSteps,
		coarsestSweeps: DefaultCoarsestSweeps,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		observer:       NopObserver{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithPreSteps sets the number of pre-smoothing steps (≥ 0).
func WithPreSteps(n int) Option {
	if n < 0 {
		panic("amg: WithPreSteps(n<0)")
	}
	return func(c *config) { c.preSteps = n }
}

// WithPostSteps sets the number of post-smoothing steps (≥ 0).
func WithPostSteps(n int) Option {
	if n < 0 {
		panic("amg: WithPostSteps(n<0)")
	}
	return func(c *config) { c.postSteps = n }
}

// WithCoarsestSweeps sets the smoother sweeps that replace the direct solve
// on a coarsest level with more rows than the coarsen target (≥ 1).
func WithCoarsestSweeps(n int) Option {
	if n < 1 {
		panic("amg: WithCoarsestSweeps(n<1)")
	}
	return func(c *config) { c.coarsestSweeps = n }
}

// WithLogger routes setup diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("amg: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithObserver registers o for setup and application events. Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("amg: WithObserver(nil)")
	}
	return func(c *config) { c.observer = o }
}

// WithParallelInformation sets the index ownership of the finest level.
// Coarse levels built by aggregation are always sequential.
func WithParallelInformation(p linop.ParallelInformation) Option {
	return func(c *config) { c.pinfo = p }
}

// WithSmootherConstructor builds smoothers with ctor instead of the
// kind and args given to NewAMG. Panics on nil.
func WithSmootherConstructor(ctor smoother.Constructor) Option {
	if ctor == nil {
		panic("amg: WithSmootherConstructor(nil)")
	}
	return func(c *config) { c.ctor = ctor }
}

func withLevel(l int) Option      { return func(c *config) { c.level = l } }
func withoutParallelInfo() Option { return func(c *config) { c.pinfo = nil } }
