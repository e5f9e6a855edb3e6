// SPDX-License-Identifier: MIT
// Package aggregation: sentinel error set.

package aggregation

import (
	"errors"
	"fmt"
)

var (
	// ErrNoAggregates is returned when the criterion leaves no aggregate at
	// all (every row skipped or the matrix degenerate). A coarse system built
	// from such a map would be empty.
	ErrNoAggregates = errors.New("aggregation: no aggregates formed")

	// ErrInvalidParameters indicates out-of-range criterion parameters.
	ErrInvalidParameters = errors.New("aggregation: invalid parameters")

	// ErrSizeMismatch indicates that a map, graph or vector length disagrees
	// with the fine or coarse dimension.
	ErrSizeMismatch = errors.New("aggregation: size mismatch")

	// ErrNilInput indicates a nil matrix, graph or criterion.
	ErrNilInput = errors.New("aggregation: nil input")

	// ErrUnknownCriterion is returned by NewCriterion for an unknown Kind.
	ErrUnknownCriterion = errors.New("aggregation: unknown criterion kind")
)

// aggErrorf tags err with the calling function and a detail message.
func aggErrorf(method, detail string, err error) error {
	return fmt.Errorf("%s: %s: %w", method, detail, err)
}
