// Package builder provides deterministic sparse matrix generators used to
// drive the aggregation hierarchy in tests, examples and benchmarks.
//
// The package offers the following key components:
//
//   - Generators (all return *sparse.Matrix, error):
//     – Laplacian1D:              tridiag(−1, 2, −1).
//     – Laplacian2D:              5-point stencil, index y·nx + x.
//     – Anisotropic2D:            −eps in x, −1 in y couplings.
//     – RandomDiagonallyDominant: symmetric M-matrix with random couplings.
//   - Options (BuilderOption):
//     – WithSeed / WithRand:      RNG for stochastic generators.
//     – WithDirichlet:            identity rows, producing isolated vertices.
//     – WithShift:                adds sigma to every free diagonal.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors (builderErrorf) wrapping ErrTooSmall,
//     ErrInvalidProbability, ErrNeedRandSource and ErrInvalidCoefficient.
//   - Reproducible output for identical inputs and seeds.
package builder
