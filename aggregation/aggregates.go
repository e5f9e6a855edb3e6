// SPDX-License-Identifier: MIT

// Package aggregation - greedy aggregate construction.
//
// Algorithm (rows processed in index order, first-come ownership):
//  1. Classify every row through the criterion. Strong couplings set
//     DependsOn on edge (i,j) and Influences on edge (j,i); rows without
//     strong couplings are flagged Isolated.
//  2. Isolated rows either become Excluded (SkipIsolated) or form an
//     aggregate of their own.
//  3. Every still unclaimed row seeds an aggregate grown by BFS over strong
//     edges to unclaimed, non-isolated rows. Direct neighbors of the seed
//     are admitted up to MaxAggregateSize; rows further out (at most
//     MaxDistance) only while the aggregate is below MinAggregateSize.
//  4. A seed that admitted nobody joins the neighboring aggregate it is most
//     strongly coupled to, provided that aggregate has room; otherwise it
//     stays a one-row aggregate.
//
// Complexity: O(nnz · log d) for classification plus O(nnz) for growth.

package aggregation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/paamg/bfs"
	"github.com/katalvlaran/paamg/graph"
	"github.com/katalvlaran/paamg/sparse"
)

// Sentinel aggregate ids.
const (
	// Unaggregated marks a row not (yet) assigned to an aggregate.
	Unaggregated = -1
	// Isolated marks a row excluded from coarsening.
	Isolated = -2
)

// Stats are the counts reported by Build.
type Stats struct {
	Aggregates int // aggregates formed, all kinds
	Isolated   int // aggregates made of a single isolated row
	OneNode    int // one-row aggregates of non-isolated rows
	Skipped    int // isolated rows excluded from coarsening
}

// AggregatesMap maps each fine row to an aggregate id or a sentinel.
type AggregatesMap struct {
	ids []int
	n   int // number of aggregates
}

// NewAggregatesMap returns a map of n rows, all Unaggregated.
func NewAggregatesMap(n int) *AggregatesMap {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = Unaggregated
	}

	return &AggregatesMap{ids: ids}
}

// FromIDs builds a map from raw ids (negative values are sentinels).
// NumAggregates is max id + 1 until Renumber compacts the ids.
func FromIDs(ids []int) *AggregatesMap {
	m := &AggregatesMap{ids: append([]int(nil), ids...)}
	for _, id := range ids {
		m.n = max(m.n, id+1)
	}

	return m
}

// Len returns the number of fine rows.
func (m *AggregatesMap) Len() int { return len(m.ids) }

// At returns the aggregate id of row i (or a sentinel).
func (m *AggregatesMap) At(i int) int { return m.ids[i] }

// Excluded reports whether row i takes no part in coarsening.
func (m *AggregatesMap) Excluded(i int) bool { return m.ids[i] < 0 }

// Raw exposes the id slice; callers must not modify it.
func (m *AggregatesMap) Raw() []int { return m.ids }

// NumAggregates returns the number of aggregates.
func (m *AggregatesMap) NumAggregates() int { return m.n }

// Sizes returns the number of rows in each aggregate.
func (m *AggregatesMap) Sizes() []int {
	sizes := make([]int, m.n)
	for _, id := range m.ids {
		if id >= 0 {
			sizes[id]++
		}
	}

	return sizes
}

// Build partitions the rows of a into aggregates using crit.
// pg must be the properties graph of a; its flags are overwritten.
// Errors: ErrNilInput, ErrSizeMismatch, ErrNoAggregates.
func Build(a *sparse.Matrix, pg *graph.PropertiesGraph, crit Criterion) (*AggregatesMap, Stats, error) {
	const method = "Build"
	var st Stats
	if a == nil || pg == nil || crit == nil {
		return nil, st, aggErrorf(method, "matrix, graph and criterion are required", ErrNilInput)
	}
	if pg.NumVertices() != a.N() || pg.NumEdgeSlots() != a.NNZ() {
		return nil, st, aggErrorf(method, "graph does not match matrix", ErrSizeMismatch)
	}
	p := crit.Parameters()
	pg.Reset()
	markStrength(a, pg, crit)

	n := a.N()
	agg := NewAggregatesMap(n)
	sizes := make([]int, 0, n/max(p.MinAggregateSize, 1)+1)
	newAggregate := func() int {
		sizes = append(sizes, 0)
		return len(sizes) - 1
	}

	for i := 0; i < n; i++ {
		if !pg.Vertex(i).Has(graph.Isolated) {
			continue
		}
		if p.SkipIsolated {
			agg.ids[i] = Isolated
			pg.SetVertex(i, graph.Excluded)
			st.Skipped++
			continue
		}
		id := newAggregate()
		agg.ids[i] = id
		sizes[id] = 1
		st.Isolated++
	}

	for seed := 0; seed < n; seed++ {
		if agg.ids[seed] != Unaggregated {
			continue
		}
		id := newAggregate()
		grown, err := grow(pg, agg, seed, id, p, &sizes[id])
		if err != nil {
			return nil, st, fmt.Errorf("%s: %w", method, err)
		}
		if grown > 1 {
			continue
		}
		if target, ok := strongestNeighbor(a, pg, agg, seed, sizes, p.MaxAggregateSize); ok {
			agg.ids[seed] = target
			sizes[target]++
			sizes = sizes[:id] // id was the last one created
			continue
		}
		st.OneNode++
	}
	pg.ResetVisited()

	agg.n = len(sizes)
	st.Aggregates = agg.n
	if agg.n == 0 {
		return nil, st, aggErrorf(method, fmt.Sprintf("%d rows skipped", st.Skipped), ErrNoAggregates)
	}

	return agg, st, nil
}

// markStrength runs the criterion over every row and records the result in pg.
func markStrength(a *sparse.Matrix, pg *graph.PropertiesGraph, crit Criterion) {
	var strong []bool
	for i := 0; i < a.N(); i++ {
		cols, _ := a.Row(i)
		if cap(strong) < len(cols) {
			strong = make([]bool, len(cols))
		}
		strong = strong[:len(cols)]
		if crit.Examine(a, i, strong) {
			pg.SetVertex(i, graph.Isolated)
			continue
		}
		off := a.RowOffset(i)
		for k, j := range cols {
			if !strong[k] || j == i {
				continue
			}
			pg.SetEdge(off+k, graph.DependsOn)
			if e, ok := pg.EdgeIndex(j, i); ok {
				pg.SetEdge(e, graph.Influences)
			}
		}
	}
}

// grow claims seed and its admissible neighborhood for aggregate id and
// returns the final size.
func grow(pg *graph.PropertiesGraph, agg *AggregatesMap, seed, id int, p Parameters, size *int) (int, error) {
	depth := make(map[int]int)
	admit := func(curr, nbr int) bool {
		if agg.ids[nbr] != Unaggregated || pg.Vertex(nbr).Has(graph.Isolated) {
			return false
		}
		if !pg.IsStrong(curr, nbr) {
			return false
		}
		if depth[curr] == 0 {
			return *size < p.MaxAggregateSize
		}
		return *size < p.MinAggregateSize
	}
	_, err := bfs.BFS(pg, seed,
		bfs.WithMaxDepth(p.MaxDistance),
		bfs.WithFilterNeighbor(admit),
		bfs.WithOnEnqueue(func(v, d int) {
			agg.ids[v] = id
			depth[v] = d
			pg.SetVertex(v, graph.Visited)
			*size++
		}),
	)

	return *size, err
}

// strongestNeighbor picks the aggregate of the strong neighbor of v with the
// largest coupling magnitude among aggregates below maxSize.
func strongestNeighbor(a *sparse.Matrix, pg *graph.PropertiesGraph, agg *AggregatesMap, v int, sizes []int, maxSize int) (int, bool) {
	best, bestW := -1, 0.0
	for _, u := range pg.Neighbors(v) {
		id := agg.ids[u]
		if id < 0 || u == v || sizes[id] >= maxSize || !pg.IsStrong(v, u) {
			continue
		}
		auv, _ := a.At(u, v)
		avu, _ := a.At(v, u)
		if w := math.Abs(auv) + math.Abs(avu); w > bestW {
			best, bestW = id, w
		}
	}

	return best, best >= 0
}
