// SPDX-License-Identifier: MIT

package aggregation

import (
	"fmt"
	"math"
)

// Default parameter values.
const (
	DefaultAlpha                     = 1.0 / 3.0
	DefaultBeta                      = 1e-5
	DefaultMaxDistance               = 2
	DefaultMinAggregateSize          = 4
	DefaultMaxAggregateSize          = 6
	DefaultProlongationDampingFactor = 1.6
	DefaultMaxLevel                  = 100
	DefaultCoarsenTarget             = 1000
	DefaultMinCoarsenRate            = 1.2
)

// Parameters are the thresholds that drive aggregation and the hierarchy
// built on top of it.
type Parameters struct {
	// Alpha is the strong-connection ratio: a coupling is strong when its
	// weight exceeds Alpha times the strongest coupling of the row.
	Alpha float64
	// Beta is the isolation threshold: a row whose strongest coupling
	// weight is below Beta has no strong couplings.
	Beta float64
	// MaxDistance bounds the graph distance from an aggregate's seed.
	MaxDistance int
	// MinAggregateSize is the size below which an aggregate keeps reaching
	// beyond its seed's direct neighbors.
	MinAggregateSize int
	// MaxAggregateSize caps the number of rows in an aggregate.
	MaxAggregateSize int
	// SkipIsolated excludes isolated rows from coarsening instead of
	// giving each its own aggregate.
	SkipIsolated bool
	// ProlongationDampingFactor scales the prolongated correction.
	ProlongationDampingFactor float64

	// MaxLevel is the maximal number of levels of a hierarchy.
	MaxLevel int
	// CoarsenTarget stops coarsening once a level has at most this many rows.
	CoarsenTarget int
	// MinCoarsenRate is the minimal fine/coarse size ratio for a level to
	// be worth another coarsening step.
	MinCoarsenRate float64
}

// DefaultParameters returns the default parameter set.
func DefaultParameters() Parameters {
	return Parameters{
		Alpha:                     DefaultAlpha,
		Beta:                      DefaultBeta,
		MaxDistance:               DefaultMaxDistance,
		MinAggregateSize:          DefaultMinAggregateSize,
		MaxAggregateSize:          DefaultMaxAggregateSize,
		ProlongationDampingFactor: DefaultProlongationDampingFactor,
		MaxLevel:                  DefaultMaxLevel,
		CoarsenTarget:             DefaultCoarsenTarget,
		MinCoarsenRate:            DefaultMinCoarsenRate,
	}
}

// SetDefaultValuesIsotropic sizes aggregates for an isotropic problem in
// dim dimensions with aggregates of the given diameter (2 when diameter < 1):
// MinAggregateSize = diameter^dim, MaxAggregateSize = 1.5·MinAggregateSize
// and MaxDistance = (dim+1)·(diameter−1).
func (p *Parameters) SetDefaultValuesIsotropic(dim, diameter int) {
	if diameter < 1 {
		diameter = 2
	}
	p.MaxDistance = diameter - 1
	size := 1 // aggregate volume
	for d := 0; d < dim; d++ {
		size *= diameter
		p.MaxDistance += diameter - 1
	}
	if p.MaxDistance < 1 {
		p.MaxDistance = 1
	}
	p.MinAggregateSize = size
	p.MaxAggregateSize = int(float64(size) * 1.5)
}

// SetDefaultValuesAnisotropic is SetDefaultValuesIsotropic with the distance
// widened by dim − 1, letting aggregates stretch along the strong direction.
func (p *Parameters) SetDefaultValuesAnisotropic(dim, diameter int) {
	p.SetDefaultValuesIsotropic(dim, diameter)
	if dim > 1 {
		p.MaxDistance += dim - 1
	}
}

// Validate reports the first out-of-range field.
func (p Parameters) Validate() error {
	switch {
	case !(p.Alpha > 0 && p.Alpha <= 1):
		return fmt.Errorf("Parameters.Validate: Alpha=%g not in (0,1]: %w", p.Alpha, ErrInvalidParameters)
	case !(p.Beta >= 0) || math.IsInf(p.Beta, 0):
		return fmt.Errorf("Parameters.Validate: Beta=%g: %w", p.Beta, ErrInvalidParameters)
	case p.MaxDistance < 1:
		return fmt.Errorf("Parameters.Validate: MaxDistance=%d < 1: %w", p.MaxDistance, ErrInvalidParameters)
	case p.MinAggregateSize < 1 || p.MaxAggregateSize < p.MinAggregateSize:
		return fmt.Errorf("Parameters.Validate: aggregate sizes [%d,%d]: %w",
			p.MinAggregateSize, p.MaxAggregateSize, ErrInvalidParameters)
	case !(p.ProlongationDampingFactor > 0) || math.IsInf(p.ProlongationDampingFactor, 0):
		return fmt.Errorf("Parameters.Validate: damping=%g: %w", p.ProlongationDampingFactor, ErrInvalidParameters)
	case p.MaxLevel < 1:
		return fmt.Errorf("Parameters.Validate: MaxLevel=%d < 1: %w", p.MaxLevel, ErrInvalidParameters)
	case p.CoarsenTarget < 1:
		return fmt.Errorf("Parameters.Validate: CoarsenTarget=%d < 1: %w", p.CoarsenTarget, ErrInvalidParameters)
	case !(p.MinCoarsenRate >= 1):
		return fmt.Errorf("Parameters.Validate: MinCoarsenRate=%g < 1: %w", p.MinCoarsenRate, ErrInvalidParameters)
	}

	return nil
}
