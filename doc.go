// Package paamg is an aggregation-based algebraic multigrid preconditioner
// for sparse linear systems A·x = b, built from the matrix alone.
//
// 🚀 What is paamg?
//
//	A pure-Go preconditioner that coarsens a sparse matrix by grouping
//	strongly coupled unknowns into aggregates:
//		• Strength of connection: symmetric and unsymmetric criteria
//		• Aggregation: BFS-grown aggregates with size and distance limits
//		• Galerkin product: coarse operator Ac = Pᵀ·A·P without forming P
//		• Two-level method: pre-smoothing, coarse correction, post-smoothing
//		• Hierarchy: recursive levels down to a small coarsest one solved by dense LU
//
// ✨ Why choose paamg?
//
//   - Black box – needs the matrix, nothing about the geometry behind it
//   - Setup once – the coarse system is built at construction, never in Apply
//   - Paired lifecycle – Pre and Post reach every smoother exactly once
//   - Observable – slog records and a Prometheus observer for every level
//
// Packages:
//
//	sparse/      CSR matrix with two-phase (pattern, then values) assembly
//	builder/     test matrices: 1-D/2-D Laplacians, anisotropic, random M-matrices
//	linop/       operator, preconditioner and inverse-operator contracts
//	graph/       matrix graph with per-vertex and per-edge flags
//	bfs/         breadth-first traversal used to grow aggregates
//	aggregation/ criteria, aggregate maps, restriction and prolongation
//	galerkin/    coarse operator pattern and values
//	smoother/    Jacobi, Gauss–Seidel and SSOR relaxation
//	amg/         transfer policy, two-level method, coarse solvers, hierarchy
//	config/      koanf-based configuration and slog logger setup
//	metrics/     Prometheus observer
//
// Quick start:
//
//	op, _ := linop.NewMatrixOperator(a)
//	crit, _ := aggregation.NewCriterion(aggregation.Symmetric, aggregation.DefaultParameters())
//	h, _ := amg.NewAMG(op, crit, smoother.KindSSOR, smoother.DefaultArgs())
//	defer h.Close()
//	h.Apply(x, r) // x += M⁻¹·r
//
//	go get github.com/katalvlaran/paamg
package paamg
