package amg_test

import (
	"testing"

	"github.com/katalvlaran/paamg/aggregation"
	"github.com/katalvlaran/paamg/amg"
	"github.com/katalvlaran/paamg/builder"
	"github.com/katalvlaran/paamg/linop"
	"github.com/katalvlaran/paamg/smoother"
	"github.com/katalvlaran/paamg/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func poisson2D(t *testing.T, n int) (*sparse.Matrix, *linop.MatrixOperator) {
	t.Helper()
	a, err := builder.Laplacian2D(n, n)
	require.NoError(t, err)
	op, err := linop.NewMatrixOperator(a)
	require.NoError(t, err)
	return a, op
}

func isotropicCriterion(t *testing.T, mutate func(*aggregation.Parameters)) aggregation.Criterion {
	t.Helper()
	p := aggregation.DefaultParameters()
	p.SetDefaultValuesIsotropic(2, 2)
	if mutate != nil {
		mutate(&p)
	}
	crit, err := aggregation.NewCriterion(aggregation.Symmetric, p)
	require.NoError(t, err)
	return crit
}

func TestNewAMG_MultiLevel(t *testing.T) {
	a, op := poisson2D(t, 16)
	crit := isotropicCriterion(t, func(p *aggregation.Parameters) { p.CoarsenTarget = 20 })
	obs := &recordingObserver{}
	h, err := amg.NewAMG(op, crit, smoother.KindSSOR, smoother.DefaultArgs(), amg.WithObserver(obs))
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })

	assert.GreaterOrEqual(t, h.Levels(), 3)
	sizes := h.LevelSizes()
	require.Len(t, sizes, h.Levels())
	assert.Equal(t, 256, sizes[0])
	for k := 1; k < len(sizes); k++ {
		assert.Less(t, sizes[k], sizes[k-1])
	}
	assert.LessOrEqual(t, sizes[len(sizes)-1], 20)
	assert.False(t, h.IsDirect())
	assert.Equal(t, 0, h.Level())

	// one OnCoarseLevel per smoothing level
	assert.Len(t, obs.levels, h.Levels()-1)
	assert.ElementsMatch(t, sizes[1:], obs.coarse)

	b := make([]float64, a.N())
	for i := range b {
		b[i] = 1
	}
	norms := richardson(t, a, h, b, 5)
	assert.Less(t, norms[5], 0.5*norms[0])
	assert.Equal(t, 5, obs.applies[0])
}

func TestNewAMG_PrePostPairedPerLevel(t *testing.T) {
	_, op := poisson2D(t, 16)
	crit := isotropicCriterion(t, func(p *aggregation.Parameters) { p.CoarsenTarget = 20 })
	var pre, post int
	h, err := amg.NewAMG(op, crit, smoother.KindGaussSeidel, smoother.DefaultArgs(),
		amg.WithSmootherConstructor(countingConstructor(&pre, &post)))
	require.NoError(t, err)
	smoothed := h.Levels() - 1
	if !h.Coarsest().IsDirect() {
		smoothed++ // the coarsest level sweeps with its own smoother
	}

	inv := amg.NewAMGInverseOperator(h)
	x := make([]float64, 256)
	b := make([]float64, 256)
	b[100] = 1
	for i := 0; i < 3; i++ {
		inv.Apply(x, b, nil)
	}
	assert.Equal(t, smoothed, pre, "one Pre per smoothing level")
	assert.Zero(t, post)

	require.NoError(t, inv.Close())
	assert.Equal(t, smoothed, pre)
	assert.Equal(t, smoothed, post, "one Post per smoothing level")
}

func TestNewAMG_InsufficientCoarseningStopsAtCurrentLevel(t *testing.T) {
	a, op := laplacian1D(t, 40)
	p := aggregation.DefaultParameters()
	p.MaxDistance, p.MinAggregateSize, p.MaxAggregateSize = 1, 2, 2
	p.CoarsenTarget = 5
	p.MinCoarsenRate = 100
	crit, err := aggregation.NewCriterion(aggregation.Symmetric, p)
	require.NoError(t, err)
	obs := &recordingObserver{}

	h, err := amg.NewAMG(op, crit, smoother.KindJacobi, smoother.DefaultArgs(),
		amg.WithObserver(obs), amg.WithCoarsestSweeps(3))
	require.NoError(t, err)
	assert.Equal(t, 1, h.Levels())
	assert.Equal(t, []int{40}, h.LevelSizes())
	assert.True(t, h.IsCoarsest())
	assert.False(t, h.IsDirect(), "40 rows exceed the coarsen target")
	assert.Same(t, h, h.Coarsest())
	assert.Empty(t, obs.levels, "a rejected coarse level is not reported")

	b := make([]float64, a.N())
	for i := range b {
		b[i] = 1
	}
	norms := richardson(t, a, h, b, 2)
	assert.Less(t, norms[1], norms[0])
	assert.Less(t, norms[2], norms[1])
	require.NoError(t, h.Close())
}

func TestNewAMG_DirichletOnlyRowsStayOnOneLevel(t *testing.T) {
	const n = 1500
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}
	a, err := builder.Laplacian1D(n, builder.WithDirichlet(rows...))
	require.NoError(t, err)
	op, err := linop.NewMatrixOperator(a)
	require.NoError(t, err)
	crit, err := aggregation.NewCriterion(aggregation.Symmetric, aggregation.DefaultParameters())
	require.NoError(t, err)

	// every row is its own aggregate, so aggregation cannot shrink the system
	h, err := amg.NewAMG(op, crit, smoother.KindGaussSeidel, smoother.DefaultArgs())
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })
	assert.Equal(t, []int{n}, h.LevelSizes())
	assert.False(t, h.IsDirect(), "no dense factorization above the coarsen target")

	d := make([]float64, n)
	for i := range d {
		d[i] = float64(i%7) - 3
	}
	v := make([]float64, n)
	h.Pre(v, d)
	h.Apply(v, d)
	h.Post(v)
	r := make([]float64, n)
	require.NoError(t, a.Residual(r, d, v))
	assert.InDelta(t, 0, sparse.Norm2(r), 1e-12, "Gauss-Seidel is exact on a diagonal system")
}

func TestNewAMG_MaxLevelOne(t *testing.T) {
	t.Run("above target sweeps", func(t *testing.T) {
		_, op := laplacian1D(t, 10)
		crit := isotropicCriterion(t, func(p *aggregation.Parameters) {
			p.MaxLevel = 1
			p.CoarsenTarget = 1
		})
		h, err := amg.NewAMG(op, crit, smoother.KindGaussSeidel, smoother.DefaultArgs())
		require.NoError(t, err)
		assert.Equal(t, 1, h.Levels())
		assert.True(t, h.IsCoarsest())
		assert.False(t, h.IsDirect())
		require.NoError(t, h.Close())
	})

	t.Run("within target is direct", func(t *testing.T) {
		a, op := laplacian1D(t, 10)
		crit := isotropicCriterion(t, func(p *aggregation.Parameters) {
			p.MaxLevel = 1
			p.CoarsenTarget = 10
		})
		h, err := amg.NewAMG(op, crit, smoother.KindGaussSeidel, smoother.DefaultArgs())
		require.NoError(t, err)
		require.True(t, h.IsDirect())
		assert.Equal(t, 1, h.Levels())

		d := make([]float64, 10)
		d[3] = 1
		v := make([]float64, 10)
		h.Pre(v, d)
		h.Apply(v, d)
		h.Post(v)
		r := make([]float64, 10)
		require.NoError(t, a.Residual(r, d, v))
		assert.InDelta(t, 0, sparse.Norm2(r), 1e-12)
		require.NoError(t, h.Close())
	})
}

func TestNewAMG_Errors(t *testing.T) {
	zero, err := sparse.FromRows([][]float64{{0, 0}, {0, 0}})
	require.NoError(t, err)
	op, err := linop.NewMatrixOperator(zero)
	require.NoError(t, err)
	crit := isotropicCriterion(t, nil)

	_, err = amg.NewAMG(op, crit, smoother.KindJacobi, smoother.DefaultArgs())
	require.ErrorIs(t, err, amg.ErrSingularCoarse)

	_, err = amg.NewAMG(nil, crit, smoother.KindJacobi, smoother.DefaultArgs())
	require.ErrorIs(t, err, amg.ErrNilArgument)
	_, err = amg.NewAMG(op, nil, smoother.KindJacobi, smoother.DefaultArgs())
	require.ErrorIs(t, err, amg.ErrNilArgument)

	_, op16 := poisson2D(t, 4)
	_, err = amg.NewAMG(op16, isotropicCriterion(t, func(p *aggregation.Parameters) { p.CoarsenTarget = 2 }),
		smoother.KindSSOR, smoother.Args{Iterations: 1, RelaxationFactor: 3})
	require.ErrorIs(t, err, smoother.ErrInvalidArgs)
}

func TestDirectSolver_AddsSolution(t *testing.T) {
	a, _ := laplacian1D(t, 5)
	ds, err := amg.NewDirectSolver(a)
	require.NoError(t, err)

	v := []float64{1, 1, 1, 1, 1}
	d := make([]float64, 5)
	ds.Apply(v, d)
	assert.Equal(t, []float64{1, 1, 1, 1, 1}, v, "zero defect adds nothing")

	requirePanicsWith(t, amg.ErrDimensionMismatch, func() { ds.Apply(v[:2], d) })
}

func TestSmoothingSolver(t *testing.T) {
	a, op := laplacian1D(t, 12)
	var pre, post int
	sm, err := countingConstructor(&pre, &post)(op)
	require.NoError(t, err)

	ss, err := amg.NewSmoothingSolver(op, sm, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, ss.Sweeps())

	d := make([]float64, 12)
	d[5] = 1
	v := make([]float64, 12)
	ss.Pre(v, d)
	ss.Apply(v, d)
	ss.Post(v)
	assert.Equal(t, 1, pre)
	assert.Equal(t, 1, post)
	assert.Equal(t, 1.0, d[5], "defect is not modified")

	// four sweeps match four Gauss-Seidel steps on the running residual
	want := make([]float64, 12)
	gs := gaussSeidel(t, op)
	r := make([]float64, 12)
	for k := 0; k < 4; k++ {
		require.NoError(t, a.Residual(r, d, want))
		gs.Apply(want, r)
	}
	assert.InDeltaSlice(t, want, v, 1e-12)

	_, err = amg.NewSmoothingSolver(op, sm, 0)
	require.ErrorIs(t, err, amg.ErrInvalidSweeps)
	_, err = amg.NewSmoothingSolver(nil, sm, 1)
	require.ErrorIs(t, err, amg.ErrNilArgument)
	requirePanicsWith(t, amg.ErrDimensionMismatch, func() { ss.Apply(v[:3], d) })
	assert.Panics(t, func() { amg.WithCoarsestSweeps(0) })
}
