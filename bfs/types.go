package bfs

import (
	"fmt"
	"slices"
)

// Graph is what BFS walks: vertices 0..NumVertices()-1 and their
// adjacency lists. graph.MatrixGraph and graph.PropertiesGraph satisfy it.
type Graph interface {
	NumVertices() int
	Neighbors(v int) []int
}

// BFSResult is what one search reached.
//
// Depth and Parent are maps rather than dense slices: aggregation runs one
// short, depth-limited search per seed over a graph that may have millions
// of rows, and a search must cost what it reaches, not the graph size.
type BFSResult struct {
	Order  []int       // vertices in visit order, start first
	Depth  map[int]int // edges from the start
	Parent map[int]int // BFS-tree predecessor; absent for the start
}

// Reached reports whether v was enqueued by the search.
func (r *BFSResult) Reached(v int) bool {
	_, ok := r.Depth[v]
	return ok
}

// PathTo returns the BFS-tree path start → dest.
// Errors: ErrNotReached.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("PathTo(%d): %w", dest, ErrNotReached)
	}
	path := make([]int, 0, r.Depth[dest]+1)
	path = append(path, dest)
	for p, ok := r.Parent[dest]; ok; p, ok = r.Parent[p] {
		path = append(path, p)
	}
	slices.Reverse(path)

	return path, nil
}
