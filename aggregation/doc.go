// SPDX-License-Identifier: MIT

// Package aggregation partitions the unknowns of a sparse matrix into
// aggregates, the coarse unknowns of an aggregation multigrid level.
//
// What
//
//   - Parameters: Alpha/Beta strength thresholds, aggregate size and
//     distance bounds, SkipIsolated, prolongation damping, hierarchy limits.
//   - Criterion: per-row strength of connection (SymmetricCriterion,
//     UnSymmetricCriterion, NewCriterion).
//   - Build: greedy BFS-grown aggregates over a graph.PropertiesGraph,
//     reporting Stats{Aggregates, Isolated, OneNode, Skipped}.
//   - Renumber: compaction of aggregate ids into [0, count).
//   - Restrict / Prolongate: piecewise constant transfer between levels.
//
// Invariants
//
//   - Every row is either excluded (negative id) or belongs to exactly one
//     aggregate; after Build or Renumber the ids form [0, NumAggregates())
//     and no aggregate is empty.
//   - Σ Restrict(x) equals Σ x over the non-excluded rows.
//
// Errors
//
//   - ErrNoAggregates, ErrInvalidParameters, ErrSizeMismatch, ErrNilInput,
//     ErrUnknownCriterion.
package aggregation
