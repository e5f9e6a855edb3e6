package builder_test

import (
	"testing"

	"github.com/katalvlaran/paamg/builder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaplacian1D(t *testing.T) {
	a, err := builder.Laplacian1D(5)
	require.NoError(t, err)
	require.Equal(t, 5, a.N())
	require.Equal(t, 13, a.NNZ())
	assert.True(t, a.IsSymmetric(0))
	for i := 0; i < 5; i++ {
		assert.Equal(t, 2.0, a.Diagonal(i))
	}
	v, _ := a.At(2, 3)
	assert.Equal(t, -1.0, v)

	_, err = builder.Laplacian1D(0)
	require.ErrorIs(t, err, builder.ErrTooSmall)
}

func TestLaplacian2D_Stencil(t *testing.T) {
	a, err := builder.Laplacian2D(3, 3)
	require.NoError(t, err)
	require.Equal(t, 9, a.N())
	assert.True(t, a.IsSymmetric(0))
	assert.Equal(t, 4.0, a.Diagonal(4))

	cols, vals := a.Row(4) // centre of the grid
	assert.Equal(t, []int{1, 3, 4, 5, 7}, cols)
	assert.Equal(t, []float64{-1, -1, 4, -1, -1}, vals)

	_, err = builder.Laplacian2D(3, 0)
	require.ErrorIs(t, err, builder.ErrTooSmall)
}

func TestAnisotropic2D(t *testing.T) {
	a, err := builder.Anisotropic2D(4, 3, 0.01)
	require.NoError(t, err)
	assert.InDelta(t, 2.02, a.Diagonal(5), 1e-15)
	vx, _ := a.At(5, 6)
	vy, _ := a.At(5, 9)
	assert.InDelta(t, -0.01, vx, 1e-15)
	assert.Equal(t, -1.0, vy)

	_, err = builder.Anisotropic2D(4, 3, 0)
	require.ErrorIs(t, err, builder.ErrInvalidCoefficient)
}

func TestRandomDiagonallyDominant(t *testing.T) {
	_, err := builder.RandomDiagonallyDominant(10, 0.3)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.RandomDiagonallyDominant(10, 1.5, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	a, err := builder.RandomDiagonallyDominant(30, 0.2, builder.WithSeed(42))
	require.NoError(t, err)
	b, err := builder.RandomDiagonallyDominant(30, 0.2, builder.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String(), "same seed, same matrix")
	assert.True(t, a.IsSymmetric(0))

	for i := 0; i < a.N(); i++ {
		cols, vals := a.Row(i)
		var off float64
		for k, j := range cols {
			if j != i {
				assert.Less(t, vals[k], 0.0)
				off -= vals[k]
			}
		}
		assert.Greater(t, a.Diagonal(i), off)
	}
}

func TestWithDirichlet_And_Shift(t *testing.T) {
	a, err := builder.Laplacian1D(4, builder.WithDirichlet(0, 9), builder.WithShift(0.5))
	require.NoError(t, err)
	assert.True(t, a.IsSymmetric(0))

	cols, vals := a.Row(0)
	assert.Equal(t, []int{0}, cols)
	assert.Equal(t, []float64{1}, vals)
	assert.False(t, a.Has(1, 0), "column of a Dirichlet row is eliminated")
	assert.Equal(t, 2.5, a.Diagonal(1))

	assert.Panics(t, func() { builder.WithDirichlet(-1) })
	assert.Panics(t, func() { builder.WithShift(-1) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}
