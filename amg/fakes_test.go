package amg_test

import (
	"testing"

	"github.com/katalvlaran/paamg/aggregation"
	"github.com/katalvlaran/paamg/builder"
	"github.com/katalvlaran/paamg/linop"
	"github.com/katalvlaran/paamg/smoother"
	"github.com/katalvlaran/paamg/sparse"
	"github.com/stretchr/testify/require"
)

// countingHierarchy records lifecycle calls.
type countingHierarchy struct {
	pre, apply, post int
	preX, postX      []float64
}

func (h *countingHierarchy) Pre(x, _ []float64) {
	h.pre++
	h.preX = append([]float64(nil), x...)
}

func (h *countingHierarchy) Apply(v, d []float64) {
	h.apply++
	for i := range v {
		v[i] += d[i]
	}
}

func (h *countingHierarchy) Post(x []float64) {
	h.post++
	h.postX = append([]float64(nil), x...)
}

// countingSmoother wraps a real smoother and counts Pre/Post.
type countingSmoother struct {
	smoother.Smoother
	pre, post *int
}

func (s countingSmoother) Pre(x, b []float64) { *s.pre++; s.Smoother.Pre(x, b) }
func (s countingSmoother) Post(x []float64)   { *s.post++; s.Smoother.Post(x) }

// countingConstructor returns a constructor whose smoothers share the counters.
func countingConstructor(pre, post *int) smoother.Constructor {
	base := smoother.NewConstructor(smoother.KindGaussSeidel, smoother.DefaultArgs())
	return func(op linop.Operator) (smoother.Smoother, error) {
		s, err := base(op)
		if err != nil {
			return nil, err
		}
		return countingSmoother{Smoother: s, pre: pre, post: post}, nil
	}
}

// recordingObserver remembers every event.
type recordingObserver struct {
	levels  []int
	coarse  []int
	stats   []aggregation.Stats
	applies map[int]int
}

func (o *recordingObserver) OnCoarseLevel(level, _, coarse int, st aggregation.Stats) {
	o.levels = append(o.levels, level)
	o.coarse = append(o.coarse, coarse)
	o.stats = append(o.stats, st)
}

func (o *recordingObserver) OnApply(level int) {
	if o.applies == nil {
		o.applies = map[int]int{}
	}
	o.applies[level]++
}

func pairCriterion(t *testing.T) aggregation.Criterion {
	t.Helper()
	p := aggregation.DefaultParameters()
	p.MaxDistance, p.MinAggregateSize, p.MaxAggregateSize = 1, 2, 2
	crit, err := aggregation.NewCriterion(aggregation.Symmetric, p)
	require.NoError(t, err)
	return crit
}

func laplacian1D(t *testing.T, n int) (*sparse.Matrix, *linop.MatrixOperator) {
	t.Helper()
	a, err := builder.Laplacian1D(n)
	require.NoError(t, err)
	op, err := linop.NewMatrixOperator(a)
	require.NoError(t, err)
	return a, op
}

func gaussSeidel(t *testing.T, op linop.Operator) smoother.Smoother {
	t.Helper()
	s, err := smoother.New(smoother.KindGaussSeidel, op, smoother.DefaultArgs())
	require.NoError(t, err)
	return s
}

// richardson runs steps of x += M⁻¹(b − Ax) and returns the residual norms,
// initial norm first.
func richardson(t *testing.T, a *sparse.Matrix, m linop.Preconditioner, b []float64, steps int) []float64 {
	t.Helper()
	x := make([]float64, a.N())
	r := make([]float64, a.N())
	require.NoError(t, a.Residual(r, b, x))
	norms := []float64{sparse.Norm2(r)}
	m.Pre(x, b)
	for k := 0; k < steps; k++ {
		m.Apply(x, r)
		require.NoError(t, a.Residual(r, b, x))
		norms = append(norms, sparse.Norm2(r))
	}
	m.Post(x)
	return norms
}

// requirePanicsWith asserts that fn panics with an error matching target.
func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}
