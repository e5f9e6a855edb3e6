package bfs

import "errors"

var (
	// ErrStartVertexNotFound: the seed is outside [0, NumVertices()).
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil: BFS was given a nil graph (interface or typed pointer).
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation: an Option carried a meaningless value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a vertex outside the search.
	ErrNotReached = errors.New("bfs: vertex not reached")
)
