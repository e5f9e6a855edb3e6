// SPDX-License-Identifier: MIT

// Package sparse is the sparse matrix/vector collaborator of paamg.
//
// What
//
//   - Matrix: real n×m compressed-row-storage matrix with sorted columns.
//   - PatternBuilder: first phase of two-phase assembly; fixes the pattern.
//   - Set/AddTo/Zero: second phase; writes values into a fixed pattern.
//   - Kernels: MulVec, MulVecAdd (y += αAx), Residual, Transpose,
//     IsSymmetric, ToDense (gonum mat bridge).
//   - Vector helpers on []float64 (Zero, Resize, Clone, Norm2); all other
//     vector arithmetic uses gonum.org/v1/gonum/floats directly.
//
// Errors
//
//   - ErrInvalidDimensions, ErrOutOfRange, ErrNotInPattern,
//     ErrDimensionMismatch, ErrNotSquare, ErrNaNInf, ErrNilMatrix.
//
// Usage
//
//	pb, _ := sparse.NewPatternBuilder(3, 3)
//	_ = pb.Insert(0, 0)
//	_ = pb.Insert(0, 1)
//	a, _ := pb.Build()      // zero values, fixed pattern
//	_ = a.AddTo(0, 1, -1.0) // accumulate into the pattern
package sparse
