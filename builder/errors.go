// SPDX-License-Identifier: MIT
// Package: paamg/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Generators attach context with builderErrorf(method, ..., ErrX).
//   • Generators never panic; option constructors may (programmer error).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooSmall indicates that a size parameter (n, nx, ny) is below the
// generator's minimum.
var ErrTooSmall = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a density outside (0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic generator was called without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidCoefficient indicates a non-finite or non-positive coefficient.
var ErrInvalidCoefficient = errors.New("builder: invalid coefficient")

// builderErrorf wraps a sentinel with the generator name and a detail message.
func builderErrorf(method, detail string, err error) error {
	return fmt.Errorf("%s: %s: %w", method, detail, err)
}
