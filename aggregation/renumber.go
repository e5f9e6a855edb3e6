// SPDX-License-Identifier: MIT

package aggregation

import (
	"github.com/katalvlaran/paamg/graph"
	"github.com/katalvlaran/paamg/linop"
)

// Renumber rewrites the ids of agg into the dense range [0, count) in order
// of first appearance, visiting owned rows before rows owned elsewhere.
// Rows flagged Excluded in pg and sentinel rows keep their value.
// It returns count, which is also stored as agg.NumAggregates().
//
// Errors: ErrNilInput, ErrSizeMismatch.
func Renumber(agg *AggregatesMap, pg *graph.PropertiesGraph, pinfo linop.ParallelInformation) (int, error) {
	const method = "Renumber"
	if agg == nil || pg == nil {
		return 0, aggErrorf(method, "map and graph are required", ErrNilInput)
	}
	if agg.Len() != pg.NumVertices() {
		return 0, aggErrorf(method, "map does not match graph", ErrSizeMismatch)
	}
	if pinfo == nil {
		pinfo = linop.SequentialInformation{}
	}

	maxID := -1
	for _, id := range agg.ids {
		maxID = max(maxID, id)
	}
	dense := make([]int, maxID+1)
	for k := range dense {
		dense[k] = Unaggregated
	}
	count := 0
	assign := func(i int) {
		raw := agg.ids[i]
		if raw < 0 || pg.Vertex(i).Has(graph.Excluded) {
			return
		}
		if dense[raw] == Unaggregated {
			dense[raw] = count
			count++
		}
	}
	for i := range agg.ids {
		if pinfo.Owner(i) {
			assign(i)
		}
	}
	for i := range agg.ids {
		if !pinfo.Owner(i) {
			assign(i)
		}
	}

	for i, raw := range agg.ids {
		if raw >= 0 && !pg.Vertex(i).Has(graph.Excluded) {
			agg.ids[i] = dense[raw]
		}
	}
	agg.n = count

	return count, nil
}
