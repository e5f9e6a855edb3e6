// SPDX-License-Identifier: MIT

// Package amg implements the two-level aggregation multigrid preconditioner
// and the hierarchy built by composing it recursively.
//
// What
//
//   - LevelTransferPolicy / AggregationLevelTransferPolicy: builds the coarse
//     level system (aggregation, dense renumbering, Galerkin product) and
//     moves vectors between the levels (restriction by summation, damped
//     piecewise constant prolongation).
//   - CoarseSolverPolicy / OneStepAMGCoarseSolverPolicy: solves the coarse
//     level with one cycle of a hierarchy, wrapped in an AMGInverseOperator
//     whose first Apply issues the hierarchy's Pre and whose Close issues
//     the matching Post.
//   - TwoLevelMethod: pre-smoothing, coarse correction, post-smoothing.
//   - AMG: the recursive hierarchy, terminated by a DirectSolver, or by a
//     SmoothingSolver when coarsening stops above the coarsen target.
//   - Observer: setup and application events (see package metrics).
//
// Lifecycle
//
//	tl, err := amg.NewTwoLevelMethod(op, sm, policy, coarsePolicy) // builds everything
//	tl.Apply(v, d)                                               // any number of times
//	_ = tl.Close()                                               // Post on the coarse hierarchy
//
// Errors
//
//   - Construction: ErrNilArgument, ErrCoarseSystemExists, ErrNoCoarseSystem,
//     ErrSingularCoarse and wrapped aggregation/galerkin/smoother errors.
//   - Application never returns errors; misuse panics with ErrNoCoarseSystem,
//     ErrClosed or ErrDimensionMismatch.
//
// Concurrency
//
//	Single-threaded. Nothing here may be applied from two goroutines at once.
package amg
