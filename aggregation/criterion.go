// SPDX-License-Identifier: MIT

// Package aggregation - strength of connection.
//
// A Criterion looks at one matrix row at a time and decides which of its
// off-diagonal couplings are strong. Only negative couplings can be strong
// (M-matrix convention); positive off-diagonals never attract rows into an
// aggregate.

package aggregation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/paamg/sparse"
)

// Criterion supplies aggregation thresholds, the prolongation damping
// factor and the strength-of-connection test.
type Criterion interface {
	Parameters() Parameters
	ProlongationDampingFactor() float64
	// Examine classifies the stored entries of row i of a. strong has the
	// length of the row; strong[k] is set when the k-th stored entry is a
	// strong off-diagonal coupling. It reports whether the row is isolated
	// (no coupling reaches the Beta threshold).
	Examine(a *sparse.Matrix, i int, strong []bool) (isolated bool)
}

// Kind selects a built-in criterion.
type Kind int

const (
	// Symmetric measures a_ij·a_ji / |a_ii·a_jj|, treating both directions alike.
	Symmetric Kind = iota
	// UnSymmetric measures −a_ij / |a_ii| using row i only.
	UnSymmetric
)

func (k Kind) String() string {
	switch k {
	case Symmetric:
		return "symmetric"
	case UnSymmetric:
		return "unsymmetric"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps "symmetric" and "unsymmetric" to their Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "symmetric":
		return Symmetric, nil
	case "unsymmetric":
		return UnSymmetric, nil
	default:
		return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownCriterion)
	}
}

// NewCriterion validates p and returns the criterion of the given kind.
func NewCriterion(kind Kind, p Parameters) (Criterion, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	switch kind {
	case Symmetric:
		return SymmetricCriterion{params: p}, nil
	case UnSymmetric:
		return UnSymmetricCriterion{params: p}, nil
	default:
		return nil, fmt.Errorf("NewCriterion(%v): %w", kind, ErrUnknownCriterion)
	}
}

// SymmetricCriterion is the strength test for symmetric (or nearly
// symmetric) matrices.
type SymmetricCriterion struct{ params Parameters }

func (c SymmetricCriterion) Parameters() Parameters { return c.params }

func (c SymmetricCriterion) ProlongationDampingFactor() float64 {
	return c.params.ProlongationDampingFactor
}

func (c SymmetricCriterion) Examine(a *sparse.Matrix, i int, strong []bool) bool {
	cols, vals := a.Row(i)
	dii := math.Abs(a.Diagonal(i))

	return classify(cols, strong, i, c.params, func(k int) float64 {
		j := cols[k]
		aij := vals[k]
		if aij >= 0 {
			return 0
		}
		aji, _ := a.At(j, i)
		if aji >= 0 {
			return 0
		}
		d := dii * math.Abs(a.Diagonal(j))
		if d == 0 {
			return aij * aji
		}

		return aij * aji / d
	})
}

// UnSymmetricCriterion is the row-wise strength test for unsymmetric matrices.
type UnSymmetricCriterion struct{ params Parameters }

func (c UnSymmetricCriterion) Parameters() Parameters { return c.params }

func (c UnSymmetricCriterion) ProlongationDampingFactor() float64 {
	return c.params.ProlongationDampingFactor
}

func (c UnSymmetricCriterion) Examine(a *sparse.Matrix, i int, strong []bool) bool {
	cols, vals := a.Row(i)
	dii := math.Abs(a.Diagonal(i))
	if dii == 0 {
		dii = 1
	}

	return classify(cols, strong, i, c.params, func(k int) float64 {
		if vals[k] >= 0 {
			return 0
		}
		return -vals[k] / dii
	})
}

// classify applies the Alpha/Beta thresholds to the weights of one row.
func classify(cols []int, strong []bool, i int, p Parameters, weight func(k int) float64) bool {
	w := make([]float64, len(cols))
	var maxW float64
	for k, j := range cols {
		strong[k] = false
		if j == i {
			continue
		}
		w[k] = weight(k)
		if w[k] > maxW {
			maxW = w[k]
		}
	}
	if maxW < p.Beta || maxW == 0 {
		return true
	}
	for k, j := range cols {
		if j != i && w[k] > p.Alpha*maxW {
			strong[k] = true
		}
	}

	return false
}
