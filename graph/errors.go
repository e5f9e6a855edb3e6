// SPDX-License-Identifier: MIT

package graph

import "errors"

var (
	// ErrNilMatrix is returned when a graph is requested for a nil matrix.
	ErrNilMatrix = errors.New("graph: nil matrix")

	// ErrNotSquare is returned for rectangular matrices; a matrix graph
	// needs rows and columns to name the same vertices.
	ErrNotSquare = errors.New("graph: matrix is not square")
)
