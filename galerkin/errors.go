// SPDX-License-Identifier: MIT

package galerkin

import "errors"

var (
	// ErrSizeMismatch indicates that the aggregate map, graph, fine matrix
	// and coarse matrix disagree in size.
	ErrSizeMismatch = errors.New("galerkin: size mismatch")

	// ErrNilInput indicates a nil matrix, graph or aggregate map.
	ErrNilInput = errors.New("galerkin: nil input")
)
