// SPDX-License-Identifier: MIT

package amg

import "github.com/katalvlaran/paamg/aggregation"

// Observer receives setup and application events of a hierarchy.
// Implementations must be cheap; they run inline with the solver.
type Observer interface {
	// OnCoarseLevel is called once a coarse level system has been built
	// below level: fine and coarse are the row counts of both levels.
	OnCoarseLevel(level, fine, coarse int, stats aggregation.Stats)
	// OnApply is called after every two-level correction on level.
	OnApply(level int)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) OnCoarseLevel(int, int, int, aggregation.Stats) {}
func (NopObserver) OnApply(int)                                    {}
