// SPDX-License-Identifier: MIT
// Package: paamg/builder
//
// options.go: functional options for the matrix generators.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption customizes a generator by mutating its builderConfig.
type BuilderOption func(*builderConfig)

// builderConfig is the resolved, immutable generator configuration.
type builderConfig struct {
	rng       *rand.Rand
	dirichlet []int   // rows turned into identity rows
	shift     float64 // added to every diagonal entry
}

// newBuilderConfig applies opts over the zero configuration.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit RNG for stochastic generators. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithDirichlet turns the listed rows into identity rows: their off-diagonal
// couplings are removed from both the row and the column (keeping symmetric
// matrices symmetric) and the diagonal is set to 1. Out-of-range rows are
// ignored by the generators. Panics on negative indices.
func WithDirichlet(rows ...int) BuilderOption {
	for _, r := range rows {
		if r < 0 {
			panic("builder: WithDirichlet(negative row)")
		}
	}
	cp := append([]int(nil), rows...)
	return func(c *builderConfig) { c.dirichlet = append(c.dirichlet, cp...) }
}

// WithShift adds sigma to every diagonal entry (sigma ≥ 0, finite).
// A positive shift makes singular Neumann-type operators definite.
func WithShift(sigma float64) BuilderOption {
	if sigma < 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		panic("builder: WithShift(sigma<0 or non-finite)")
	}
	return func(c *builderConfig) { c.shift = sigma }
}
