// SPDX-License-Identifier: MIT
// Package linop: sentinel error set.

package linop

import "errors"

var (
	// ErrNilOperator indicates that a nil matrix was wrapped.
	ErrNilOperator = errors.New("linop: nil operator")

	// ErrNotSquare indicates that a linear operator must map a space onto itself.
	ErrNotSquare = errors.New("linop: operator is not square")
)
