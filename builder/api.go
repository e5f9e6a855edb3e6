// SPDX-License-Identifier: MIT
// Package: paamg/builder
//
// api.go: public matrix generators.
//
// Design contract:
//   • Every generator validates its parameters first and returns sentinel
//     errors wrapped with the generator name; no panics at runtime.
//   • Entries are emitted in a fixed order (row-major, stencil order), so the
//     same inputs and seed always produce identical matrices.
//   • Options (WithDirichlet, WithShift) are applied after the stencil, in
//     that order.

package builder

import (
	"math"

	"github.com/katalvlaran/paamg/sparse"
)

// File-local constants: method tags and minima.
const (
	methodLaplacian1D    = "Laplacian1D"
	methodLaplacian2D    = "Laplacian2D"
	methodAnisotropic2D  = "Anisotropic2D"
	methodRandomDominant = "RandomDiagonallyDominant"

	minSize = 1
)

// Laplacian1D returns the n×n finite-difference Laplacian tridiag(−1, 2, −1)
// with homogeneous Dirichlet boundaries eliminated (symmetric positive definite).
// Complexity: O(n).
func Laplacian1D(n int, opts ...BuilderOption) (*sparse.Matrix, error) {
	if n < minSize {
		return nil, builderErrorf(methodLaplacian1D, "n must be ≥ 1", ErrTooSmall)
	}
	cfg := newBuilderConfig(opts...)
	st := newStencil(n)
	for i := 0; i < n; i++ {
		st.add(i, i, 2)
		if i > 0 {
			st.add(i, i-1, -1)
		}
		if i+1 < n {
			st.add(i, i+1, -1)
		}
	}

	return st.finish(methodLaplacian1D, cfg)
}

// Laplacian2D returns the 5-point Laplacian on an nx×ny grid, unknown
// index i = y·nx + x. Complexity: O(nx·ny).
func Laplacian2D(nx, ny int, opts ...BuilderOption) (*sparse.Matrix, error) {
	return grid2D(methodLaplacian2D, nx, ny, 1, opts...)
}

// Anisotropic2D returns the 5-point operator −eps·∂xx − ∂yy on an nx×ny grid.
// Small eps produces strong coupling in y only, the classic case where
// strength-of-connection based aggregation must follow the y direction.
func Anisotropic2D(nx, ny int, eps float64, opts ...BuilderOption) (*sparse.Matrix, error) {
	if !(eps > 0) || math.IsInf(eps, 0) {
		return nil, builderErrorf(methodAnisotropic2D, "eps must be finite and > 0", ErrInvalidCoefficient)
	}

	return grid2D(methodAnisotropic2D, nx, ny, eps, opts...)
}

// grid2D emits the shared 5-point stencil with x-coupling ex and y-coupling 1.
func grid2D(method string, nx, ny int, ex float64, opts ...BuilderOption) (*sparse.Matrix, error) {
	if nx < minSize || ny < minSize {
		return nil, builderErrorf(method, "nx and ny must be ≥ 1", ErrTooSmall)
	}
	cfg := newBuilderConfig(opts...)
	n := nx * ny
	st := newStencil(n)
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			i := y*nx + x
			st.add(i, i, 2*ex+2)
			if y > 0 {
				st.add(i, i-nx, -1)
			}
			if x > 0 {
				st.add(i, i-1, -ex)
			}
			if x+1 < nx {
				st.add(i, i+1, -ex)
			}
			if y+1 < ny {
				st.add(i, i+nx, -1)
			}
		}
	}

	return st.finish(method, cfg)
}

// RandomDiagonallyDominant returns a symmetric n×n matrix with negative
// off-diagonal couplings drawn with probability density per upper-triangle
// pair, and a diagonal equal to 1 + Σ|off-diagonal| of its row (strictly
// diagonally dominant M-matrix). Requires WithSeed or WithRand.
func RandomDiagonallyDominant(n int, density float64, opts ...BuilderOption) (*sparse.Matrix, error) {
	if n < minSize {
		return nil, builderErrorf(methodRandomDominant, "n must be ≥ 1", ErrTooSmall)
	}
	if !(density > 0 && density <= 1) {
		return nil, builderErrorf(methodRandomDominant, "density must be in (0,1]", ErrInvalidProbability)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, builderErrorf(methodRandomDominant, "missing rng", ErrNeedRandSource)
	}

	st := newStencil(n)
	rowAbs := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if cfg.rng.Float64() >= density {
				continue
			}
			w := 0.1 + cfg.rng.Float64() // keep couplings away from zero
			st.add(i, j, -w)
			st.add(j, i, -w)
			rowAbs[i] += w
			rowAbs[j] += w
		}
	}
	for i := 0; i < n; i++ {
		st.add(i, i, 1+rowAbs[i])
	}

	return st.finish(methodRandomDominant, cfg)
}
