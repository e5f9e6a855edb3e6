package metrics_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/paamg/aggregation"
	"github.com/katalvlaran/paamg/amg"
	"github.com/katalvlaran/paamg/builder"
	"github.com/katalvlaran/paamg/linop"
	"github.com/katalvlaran/paamg/metrics"
	"github.com/katalvlaran/paamg/smoother"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserver_Events(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs := metrics.NewObserver(reg, "test")

	obs.OnCoarseLevel(0, 100, 25, aggregation.Stats{Aggregates: 25, Isolated: 2})
	obs.OnCoarseLevel(1, 25, 6, aggregation.Stats{Aggregates: 6, OneNode: 1})
	obs.OnApply(0)
	obs.OnApply(0)
	obs.OnApply(1)

	assert.Equal(t, 3.0, testutil.ToFloat64(obs.Levels))
	assert.Equal(t, 25.0, testutil.ToFloat64(obs.CoarseRows.WithLabelValues("0")))
	assert.Equal(t, 6.0, testutil.ToFloat64(obs.CoarseRows.WithLabelValues("1")))
	assert.Equal(t, 31.0, testutil.ToFloat64(obs.Aggregates.WithLabelValues(metrics.KindAggregate)))
	assert.Equal(t, 2.0, testutil.ToFloat64(obs.Aggregates.WithLabelValues(metrics.KindIsolated)))
	assert.Equal(t, 1.0, testutil.ToFloat64(obs.Aggregates.WithLabelValues(metrics.KindOneNode)))
	assert.Equal(t, 2.0, testutil.ToFloat64(obs.Applications.WithLabelValues("0")))

	expected := `
# HELP test_applications_total Two-level corrections applied, by level
# TYPE test_applications_total counter
test_applications_total{level="0"} 2
test_applications_total{level="1"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "test_applications_total"))

	// aggregate counts are summed per build, not counted per row
	expected = `
# HELP test_aggregates_total Aggregation outcomes summed over coarse level builds, by kind
# TYPE test_aggregates_total counter
test_aggregates_total{kind="aggregate"} 31
test_aggregates_total{kind="isolated"} 2
test_aggregates_total{kind="one_node"} 1
test_aggregates_total{kind="skipped"} 0
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "test_aggregates_total"))

	assert.Panics(t, func() { metrics.NewObserver(reg, "test") }, "duplicate registration")
}

func TestObserver_WithHierarchy(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs := metrics.NewObserver(reg, "paamg")

	a, err := builder.Laplacian2D(12, 12)
	require.NoError(t, err)
	op, err := linop.NewMatrixOperator(a)
	require.NoError(t, err)
	p := aggregation.DefaultParameters()
	p.SetDefaultValuesIsotropic(2, 2)
	p.CoarsenTarget = 10
	crit, err := aggregation.NewCriterion(aggregation.Symmetric, p)
	require.NoError(t, err)

	h, err := amg.NewAMG(op, crit, smoother.KindGaussSeidel, smoother.DefaultArgs(), amg.WithObserver(obs))
	require.NoError(t, err)
	defer func() { _ = h.Close() }()

	assert.Equal(t, float64(h.Levels()), testutil.ToFloat64(obs.Levels))
	sizes := h.LevelSizes()
	assert.Equal(t, float64(sizes[1]), testutil.ToFloat64(obs.CoarseRows.WithLabelValues("0")))

	v, d := make([]float64, a.N()), make([]float64, a.N())
	d[0] = 1
	h.Apply(v, d)
	assert.Equal(t, 1.0, testutil.ToFloat64(obs.Applications.WithLabelValues("0")))
	assert.Equal(t, 1.0, testutil.ToFloat64(obs.Applications.WithLabelValues("1")))
}
