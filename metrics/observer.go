// SPDX-License-Identifier: MIT
// Package: paamg/metrics
//
// observer.go: Prometheus collectors fed by hierarchy events.

package metrics

import (
	"strconv"

	"github.com/katalvlaran/paamg/aggregation"
	"github.com/katalvlaran/paamg/amg"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Aggregate kinds used as the "kind" label of aggregates_total.
const (
	KindAggregate = "aggregate"
	KindIsolated  = "isolated"
	KindOneNode   = "one_node"
	KindSkipped   = "skipped"
)

// Observer records hierarchy setup and application counts.
type Observer struct {
	Levels       prometheus.Gauge
	CoarseRows   *prometheus.GaugeVec
	Aggregates   *prometheus.CounterVec
	Applications *prometheus.CounterVec
}

var _ amg.Observer = (*Observer)(nil)

// NewObserver registers the collectors with reg under namespace.
// Registration panics on duplicates, as promauto does.
func NewObserver(reg prometheus.Registerer, namespace string) *Observer {
	f := promauto.With(reg)

	return &Observer{
		Levels: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "levels",
			Help:      "Number of levels of the most recently built hierarchy",
		}),
		CoarseRows: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "coarse_rows",
			Help:      "Rows of the coarse system built below a level",
		}, []string{"level"}),
		Aggregates: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "aggregates_total",
			Help:      "Aggregation outcomes summed over coarse level builds, by kind",
		}, []string{"kind"}),
		Applications: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "applications_total",
			Help:      "Two-level corrections applied, by level",
		}, []string{"level"}),
	}
}

// OnCoarseLevel records the coarse size and the aggregation counts.
// Levels are built finest first, so the last event of a build leaves the
// levels gauge at the hierarchy depth: the reporting level, its coarse
// level, and nothing below it.
func (o *Observer) OnCoarseLevel(level, _, coarse int, st aggregation.Stats) {
	o.Levels.Set(float64(level + 2))
	o.CoarseRows.WithLabelValues(strconv.Itoa(level)).Set(float64(coarse))
	o.Aggregates.WithLabelValues(KindAggregate).Add(float64(st.Aggregates))
	o.Aggregates.WithLabelValues(KindIsolated).Add(float64(st.Isolated))
	o.Aggregates.WithLabelValues(KindOneNode).Add(float64(st.OneNode))
	o.Aggregates.WithLabelValues(KindSkipped).Add(float64(st.Skipped))
}

// OnApply counts one correction on level.
func (o *Observer) OnApply(level int) {
	o.Applications.WithLabelValues(strconv.Itoa(level)).Inc()
}
