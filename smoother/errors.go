// SPDX-License-Identifier: MIT

package smoother

import "errors"

var (
	// ErrZeroDiagonal indicates a zero diagonal entry; relaxation divides by it.
	ErrZeroDiagonal = errors.New("smoother: zero diagonal entry")

	// ErrInvalidArgs indicates non-positive iterations or a relaxation
	// factor outside (0,2).
	ErrInvalidArgs = errors.New("smoother: invalid arguments")

	// ErrUnknownKind is returned by New for an unknown Kind.
	ErrUnknownKind = errors.New("smoother: unknown kind")

	// ErrNilOperator indicates a nil operator.
	ErrNilOperator = errors.New("smoother: nil operator")
)
