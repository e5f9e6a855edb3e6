// SPDX-License-Identifier: MIT

// Package graph - adjacency view of a sparse matrix.
//
// Vertices are the row indices 0..N-1. Edges are the off-diagonal stored
// entries; the index of an edge is its position in the matrix storage, so
// an edge property slice of length NNZ addresses matrix values directly.
//
// Neighbor lists are the union of both directions: if only a_ij is stored,
// j is a neighbor of i and i is a neighbor of j, but only EdgeIndex(i,j)
// resolves.

package graph

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/paamg/sparse"
)

// MatrixGraph is an immutable adjacency view of a square sparse matrix.
type MatrixGraph struct {
	a         *sparse.Matrix
	start     []int // len N+1, offsets into nbrs
	nbrs      []int // sorted per vertex, no self loops
	symmetric bool  // pattern is structurally symmetric
}

// NewMatrixGraph builds the adjacency view of m.
// Complexity: O(nnz log d) where d is the maximal degree.
func NewMatrixGraph(m *sparse.Matrix) (*MatrixGraph, error) {
	if m == nil {
		return nil, fmt.Errorf("NewMatrixGraph: %w", ErrNilMatrix)
	}
	if !m.Square() {
		return nil, fmt.Errorf("NewMatrixGraph(%dx%d): %w", m.N(), m.M(), ErrNotSquare)
	}

	g := &MatrixGraph{a: m, symmetric: m.IsStructurallySymmetric()}
	n := m.N()
	g.start = make([]int, n+1)
	if g.symmetric {
		for i := 0; i < n; i++ {
			cols, _ := m.Row(i)
			for _, j := range cols {
				if j != i {
					g.nbrs = append(g.nbrs, j)
				}
			}
			g.start[i+1] = len(g.nbrs)
		}

		return g, nil
	}

	// union of both directions
	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		cols, _ := m.Row(i)
		for _, j := range cols {
			if j == i {
				continue
			}
			adj[i] = append(adj[i], j)
			if !m.Has(j, i) {
				adj[j] = append(adj[j], i)
			}
		}
	}
	for i := 0; i < n; i++ {
		sort.Ints(adj[i])
		g.nbrs = append(g.nbrs, adj[i]...)
		g.start[i+1] = len(g.nbrs)
	}

	return g, nil
}

// Matrix returns the underlying matrix.
func (g *MatrixGraph) Matrix() *sparse.Matrix { return g.a }

// NumVertices returns N.
func (g *MatrixGraph) NumVertices() int { return g.a.N() }

// MaxVertex returns the largest vertex index, N-1.
func (g *MatrixGraph) MaxVertex() int { return g.a.N() - 1 }

// NumEdges returns the number of directed adjacency entries (each
// undirected coupling counts twice).
func (g *MatrixGraph) NumEdges() int { return len(g.nbrs) }

// NumEdgeSlots returns the length an edge property slice must have (NNZ).
func (g *MatrixGraph) NumEdgeSlots() int { return g.a.NNZ() }

// StructurallySymmetric reports whether a_ij stored implies a_ji stored.
func (g *MatrixGraph) StructurallySymmetric() bool { return g.symmetric }

// Neighbors returns the sorted neighbors of v. The slice must not be modified.
func (g *MatrixGraph) Neighbors(v int) []int {
	lo, hi := g.start[v], g.start[v+1]

	return g.nbrs[lo:hi:hi]
}

// EdgeIndex returns the storage position of a_uv when it is stored off the
// diagonal.
func (g *MatrixGraph) EdgeIndex(u, v int) (int, bool) {
	if u == v {
		return 0, false
	}
	cols, _ := g.a.Row(u)
	k := sort.SearchInts(cols, v)
	if k < len(cols) && cols[k] == v {
		return g.a.RowOffset(u) + k, true
	}

	return 0, false
}

// Value returns the matrix value of the edge at storage position e.
func (g *MatrixGraph) Value(e int) float64 { return g.a.ValueAt(e) }
