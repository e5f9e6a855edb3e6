// SPDX-License-Identifier: MIT

package linop

import "time"

// Preconditioner approximates the inverse of an operator.
//
// Pre is issued once before a sequence of Apply calls with the initial
// guess x and right-hand side b; Post is issued once afterwards.
type Preconditioner interface {
	Pre(x, b []float64)
	// Apply adds an approximation of A⁻¹d to v.
	Apply(v, d []float64)
	Post(x []float64)
}

// Result reports the outcome of an inverse operator application.
type Result struct {
	Iterations int
	Reduction  float64 // final / initial defect norm
	Converged  bool
	ConvRate   float64
	Elapsed    time.Duration
}

// Clear resets r to its zero value.
func (r *Result) Clear() { *r = Result{} }

// InverseOperator solves A x = b approximately.
//
// Apply may overwrite b. Close releases any state created by the first
// Apply; calling Close more than once is harmless.
type InverseOperator interface {
	Apply(x, b []float64, res *Result)
	ApplyWithReduction(x, b []float64, reduction float64, res *Result)
	Close() error
}
