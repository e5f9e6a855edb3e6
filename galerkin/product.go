// SPDX-License-Identifier: MIT

// Package galerkin assembles the coarse operator Ac = Pᵀ A P of a
// piecewise constant aggregation: every fine entry a_ij is summed into
// Ac[agg(i)][agg(j)].
//
// Assembly has two phases. Build fixes the sparsity pattern: one entry per
// pair of aggregates joined by at least one fine nonzero. Calculate fills
// the values and can be repeated on the same pattern whenever only the fine
// values change.
//
// Rows and columns that are excluded (negative aggregate id) or that the
// overlap predicate rejects contribute nothing.
package galerkin

import (
	"fmt"

	"github.com/katalvlaran/paamg/aggregation"
	"github.com/katalvlaran/paamg/linop"
	"github.com/katalvlaran/paamg/sparse"
)

// Product is the two-phase Galerkin assembler. The zero value is ready to use;
// a Product keeps scratch space between calls and is not safe for concurrent use.
type Product struct {
	marker []int // last fine row that inserted a coarse column
}

// Build returns the zero-valued n×n coarse pattern. Every fine row is scanned
// once; columns repeated within a row are inserted once and repeats across
// rows of one aggregate are merged by the pattern builder.
// A nil overlap is derived from pinfo.
// Complexity: O(nnz(fine) · log nnz(coarse row)).
func (p *Product) Build(
	fine *sparse.Matrix,
	pinfo linop.ParallelInformation,
	agg *aggregation.AggregatesMap,
	n int,
	overlap func(int) bool,
) (*sparse.Matrix, error) {
	const method = "Product.Build"
	if fine == nil || agg == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNilInput)
	}
	if agg.Len() != fine.N() || n != agg.NumAggregates() {
		return nil, fmt.Errorf("%s: fine %d, map %d, aggregates %d/%d: %w",
			method, fine.N(), agg.Len(), n, agg.NumAggregates(), ErrSizeMismatch)
	}
	if overlap == nil {
		overlap = linop.OverlapPredicate(pinfo)
	}

	pb, err := sparse.NewPatternBuilder(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	p.marker = sparse.ResizeInts(p.marker, n, -1)
	for i := 0; i < fine.N(); i++ {
		ci := agg.At(i)
		if ci < 0 || overlap(i) {
			continue
		}
		cols, _ := fine.Row(i)
		for _, j := range cols {
			cj := agg.At(j)
			if cj < 0 || overlap(j) || p.marker[cj] == i {
				continue
			}
			p.marker[cj] = i
			if err = pb.Insert(ci, cj); err != nil {
				return nil, fmt.Errorf("%s: %w", method, err)
			}
		}
	}

	return pb.Build()
}

// Calculate zeroes coarse and accumulates the fine values into it.
// coarse must carry a pattern produced by Build for the same map.
// Errors: ErrNilInput, ErrSizeMismatch, sparse.ErrNotInPattern (foreign pattern).
func (p *Product) Calculate(
	fine *sparse.Matrix,
	agg *aggregation.AggregatesMap,
	coarse *sparse.Matrix,
	pinfo linop.ParallelInformation,
	overlap func(int) bool,
) error {
	const method = "Product.Calculate"
	if fine == nil || agg == nil || coarse == nil {
		return fmt.Errorf("%s: %w", method, ErrNilInput)
	}
	if agg.Len() != fine.N() || coarse.N() != agg.NumAggregates() || !coarse.Square() {
		return fmt.Errorf("%s: %w", method, ErrSizeMismatch)
	}
	if overlap == nil {
		overlap = linop.OverlapPredicate(pinfo)
	}

	coarse.Zero()
	for i := 0; i < fine.N(); i++ {
		ci := agg.At(i)
		if ci < 0 || overlap(i) {
			continue
		}
		cols, vals := fine.Row(i)
		for k, j := range cols {
			cj := agg.At(j)
			if cj < 0 || overlap(j) {
				continue
			}
			if err := coarse.AddTo(ci, cj, vals[k]); err != nil {
				return fmt.Errorf("%s: %w", method, err)
			}
		}
	}

	return nil
}
