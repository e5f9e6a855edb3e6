// SPDX-License-Identifier: MIT
// Package: paamg/builder
//
// stencil.go: coordinate accumulator shared by all generators.

package builder

import (
	"fmt"

	"github.com/katalvlaran/paamg/sparse"
)

// stencil collects coordinate triplets before assembly.
type stencil struct {
	n          int
	rows, cols []int
	vals       []float64
}

func newStencil(n int) *stencil {
	return &stencil{n: n}
}

func (s *stencil) add(i, j int, v float64) {
	s.rows = append(s.rows, i)
	s.cols = append(s.cols, j)
	s.vals = append(s.vals, v)
}

// finish applies the configured post-processing and assembles the matrix.
//   - Dirichlet rows: every triplet touching a listed row or column off the
//     diagonal is dropped; the diagonal of a listed row becomes exactly 1.
//   - Shift: sigma is added to every non-Dirichlet diagonal.
func (s *stencil) finish(method string, cfg builderConfig) (*sparse.Matrix, error) {
	fixed := make([]bool, s.n)
	for _, r := range cfg.dirichlet {
		if r < s.n {
			fixed[r] = true
		}
	}

	var rows, cols []int
	var vals []float64
	for k := range s.rows {
		i, j := s.rows[k], s.cols[k]
		if i != j && (fixed[i] || fixed[j]) {
			continue
		}
		if i == j && fixed[i] {
			continue // replaced below
		}
		rows, cols, vals = append(rows, i), append(cols, j), append(vals, s.vals[k])
	}
	for i := 0; i < s.n; i++ {
		switch {
		case fixed[i]:
			rows, cols, vals = append(rows, i), append(cols, i), append(vals, 1)
		case cfg.shift != 0:
			rows, cols, vals = append(rows, i), append(cols, i), append(vals, cfg.shift)
		}
	}

	a, err := sparse.FromTriplets(s.n, s.n, rows, cols, vals)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return a, nil
}
