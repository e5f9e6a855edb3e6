// SPDX-License-Identifier: MIT

// Package metrics exports aggregation hierarchy statistics to Prometheus.
//
// NewObserver returns an amg.Observer; pass it with amg.WithObserver:
//
//	obs := metrics.NewObserver(prometheus.DefaultRegisterer, "paamg")
//	h, err := amg.NewAMG(op, crit, kind, args, amg.WithObserver(obs))
//
// Collected series (with namespace prefix):
//
//	levels                     gauge, depth of the last built hierarchy
//	coarse_rows{level}         gauge, coarse rows below each level
//	aggregates_total{kind}     counter, aggregate/isolated/one_node/skipped
//	applications_total{level}  counter, two-level corrections
package metrics
