package galerkin_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/paamg/aggregation"
	"github.com/katalvlaran/paamg/builder"
	"github.com/katalvlaran/paamg/galerkin"
	"github.com/katalvlaran/paamg/graph"
	"github.com/katalvlaran/paamg/linop"
	"github.com/katalvlaran/paamg/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// coarsen aggregates a with the given parameters.
func coarsen(t *testing.T, a *sparse.Matrix, p aggregation.Parameters) *aggregation.AggregatesMap {
	t.Helper()
	g, err := graph.NewMatrixGraph(a)
	require.NoError(t, err)
	pg := graph.NewPropertiesGraph(g)
	crit, err := aggregation.NewCriterion(aggregation.Symmetric, p)
	require.NoError(t, err)
	agg, _, err := aggregation.Build(a, pg, crit)
	require.NoError(t, err)
	return agg
}

func galerkinProduct(t *testing.T, a *sparse.Matrix, agg *aggregation.AggregatesMap) *sparse.Matrix {
	t.Helper()
	var prod galerkin.Product
	ac, err := prod.Build(a, linop.SequentialInformation{}, agg, agg.NumAggregates(), nil)
	require.NoError(t, err)
	require.NoError(t, prod.Calculate(a, agg, ac, linop.SequentialInformation{}, nil))
	return ac
}

func TestProduct_PairsReproduceLaplacian(t *testing.T) {
	a, err := builder.Laplacian1D(8)
	require.NoError(t, err)
	p := aggregation.DefaultParameters()
	p.MaxDistance, p.MinAggregateSize, p.MaxAggregateSize = 1, 2, 2
	agg := coarsen(t, a, p)

	ac := galerkinProduct(t, a, agg)
	want, err := builder.Laplacian1D(4)
	require.NoError(t, err)
	if diff := cmp.Diff(want.String(), ac.String()); diff != "" {
		t.Fatalf("coarse matrix (-want +got):\n%s", diff)
	}
}

func TestProduct_ScatteredAggregatePattern(t *testing.T) {
	a, err := builder.Laplacian1D(6)
	require.NoError(t, err)
	// rows of one aggregate are not adjacent in the matrix
	agg := aggregation.FromIDs([]int{0, 1, 2, 0, 1, 2})

	var prod galerkin.Product
	first, err := prod.Build(a, nil, agg, 3, nil)
	require.NoError(t, err)
	// every aggregate touches every other one exactly once
	assert.Equal(t, 9, first.NNZ())

	// the scratch marker is reused between builds without leaking state
	second, err := prod.Build(a, nil, agg, 3, nil)
	require.NoError(t, err)
	if diff := cmp.Diff(first.String(), second.String()); diff != "" {
		t.Fatalf("rebuilt pattern (-first +second):\n%s", diff)
	}

	require.NoError(t, prod.Calculate(a, agg, second, nil, nil))
	v, _ := second.At(0, 0)
	assert.Equal(t, 4.0, v)
	v, _ = second.At(0, 1)
	assert.Equal(t, -2.0, v)
	v, _ = second.At(0, 2)
	assert.Equal(t, -1.0, v, "only the 2-3 coupling joins aggregates 2 and 0")
}

func TestProduct_SymmetryAndMass(t *testing.T) {
	a, err := builder.RandomDiagonallyDominant(60, 0.1, builder.WithSeed(7))
	require.NoError(t, err)
	agg := coarsen(t, a, aggregation.DefaultParameters())
	ac := galerkinProduct(t, a, agg)

	require.Equal(t, agg.NumAggregates(), ac.N())
	assert.True(t, ac.IsSymmetric(1e-12))

	// Σ Ac = Σ A when no row is excluded
	ones := make([]float64, a.N())
	for i := range ones {
		ones[i] = 1
	}
	var sumA, sumAc float64
	y := make([]float64, a.N())
	require.NoError(t, a.MulVec(y, ones))
	for _, v := range y {
		sumA += v
	}
	yc := make([]float64, ac.N())
	require.NoError(t, ac.MulVec(yc, ones[:ac.N()]))
	for _, v := range yc {
		sumAc += v
	}
	assert.InDelta(t, sumA, sumAc, 1e-9)
}

func TestProduct_ExcludedAndOverlap(t *testing.T) {
	a, err := builder.Laplacian1D(4)
	require.NoError(t, err)

	agg := aggregation.FromIDs([]int{aggregation.Isolated, 0, 0, 1})
	var prod galerkin.Product
	ac, err := prod.Build(a, nil, agg, 2, nil)
	require.NoError(t, err)
	require.NoError(t, prod.Calculate(a, agg, ac, nil, nil))
	assert.Equal(t, "[2, -1]\n[-1, 2]\n", ac.String())

	// row/column 3 is owned elsewhere: its couplings are dropped
	mask := linop.OwnerMask{true, true, true, false}
	agg = aggregation.FromIDs([]int{0, 0, 1, 1})
	ac, err = prod.Build(a, mask, agg, 2, nil)
	require.NoError(t, err)
	require.NoError(t, prod.Calculate(a, agg, ac, mask, nil))
	v, _ := ac.At(1, 1)
	assert.Equal(t, 2.0, v)
	v, _ = ac.At(0, 1)
	assert.Equal(t, -1.0, v)
}

func TestProduct_Errors(t *testing.T) {
	a, err := builder.Laplacian1D(4)
	require.NoError(t, err)
	agg := aggregation.FromIDs([]int{0, 0, 1, 1})

	var prod galerkin.Product
	_, err = prod.Build(nil, nil, agg, 2, nil)
	require.ErrorIs(t, err, galerkin.ErrNilInput)
	_, err = prod.Build(a, nil, agg, 3, nil)
	require.ErrorIs(t, err, galerkin.ErrSizeMismatch)

	// a pattern missing the off-diagonal coupling
	diag, err := sparse.FromRows([][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)
	require.ErrorIs(t, prod.Calculate(a, agg, diag, nil, nil), sparse.ErrNotInPattern)
}
