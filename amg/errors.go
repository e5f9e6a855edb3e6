// SPDX-License-Identifier: MIT
// Package amg: sentinel error set.
//
// Error policy:
//   • Construction (NewTwoLevelMethod, NewAMG, CreateCoarseLevelSystem,
//     CreateCoarseLevelSolver) returns errors; callers branch with errors.Is.
//   • Application (Apply, MoveToCoarseLevel, MoveToFineLevel) has no error
//     path. Calling it in a state where it cannot run is a programmer error
//     and panics with one of the sentinels below.

package amg

import "errors"

var (
	// ErrNoCoarseSystem indicates a transfer or solver request before
	// CreateCoarseLevelSystem succeeded.
	ErrNoCoarseSystem = errors.New("amg: coarse level system not created")

	// ErrCoarseSystemExists indicates a second CreateCoarseLevelSystem call
	// on the same policy.
	ErrCoarseSystemExists = errors.New("amg: coarse level system already created")

	// ErrSingularCoarse indicates that the coarsest matrix cannot be factorized.
	ErrSingularCoarse = errors.New("amg: singular coarsest matrix")

	// ErrNilArgument indicates a nil operator, smoother, policy or criterion.
	ErrNilArgument = errors.New("amg: nil argument")

	// ErrInvalidSweeps indicates a coarsest level sweep count below one.
	ErrInvalidSweeps = errors.New("amg: invalid coarsest sweep count")

	// ErrClosed indicates use of an inverse operator after Close.
	ErrClosed = errors.New("amg: inverse operator closed")

	// ErrDimensionMismatch indicates vectors whose length differs from the
	// operator size.
	ErrDimensionMismatch = errors.New("amg: dimension mismatch")
)
