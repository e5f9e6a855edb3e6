package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/paamg/aggregation"
	"github.com/katalvlaran/paamg/amg"
	"github.com/katalvlaran/paamg/builder"
	"github.com/katalvlaran/paamg/config"
	"github.com/katalvlaran/paamg/linop"
	"github.com/katalvlaran/paamg/smoother"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noFiles keeps the loader away from files in the working directory.
func noFiles(t *testing.T) config.LoaderOption {
	return config.WithConfigPaths(filepath.Join(t.TempDir(), "absent.yaml"))
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.NewLoader(noFiles(t)).Load()
	require.NoError(t, err)
	if diff := cmp.Diff(config.Default(), *cfg); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, aggregation.DefaultParameters(), cfg.Parameters())
	assert.Equal(t, smoother.DefaultArgs(), cfg.SmootherArgs())

	k, err := cfg.SmootherKind()
	require.NoError(t, err)
	assert.Equal(t, smoother.KindGaussSeidel, k)
	ck, err := cfg.CriterionKind()
	require.NoError(t, err)
	assert.Equal(t, aggregation.Symmetric, ck)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "paamg.yaml")
	yaml := []byte(`
criterion:
  kind: unsymmetric
  alpha: 0.25
  dimension: 2
  diameter: 2
smoother:
  kind: ssor
  relaxation: 1.2
cycle:
  pre_steps: 2
log:
  format: text
`)
	require.NoError(t, os.WriteFile(path, yaml, 0o600))
	t.Setenv("PAAMG_CYCLE_POST_STEPS", "3")
	t.Setenv("PAAMG_CRITERION_ALPHA", "0.5")
	t.Setenv("PAAMG_CRITERION_SKIP_ISOLATED", "true")

	cfg, err := config.NewLoader(config.WithConfigPaths(path)).Load()
	require.NoError(t, err)

	assert.Equal(t, "unsymmetric", cfg.Criterion.Kind)
	assert.Equal(t, 0.5, cfg.Criterion.Alpha, "env overrides file")
	assert.True(t, cfg.Criterion.SkipIsolated)
	assert.Equal(t, 2, cfg.Cycle.PreSteps)
	assert.Equal(t, 3, cfg.Cycle.PostSteps)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 1.2, cfg.Smoother.Relaxation)
	assert.Equal(t, 1, cfg.Smoother.Iterations, "unset keys keep defaults")

	p := cfg.Parameters()
	assert.Equal(t, 4, p.MinAggregateSize, "sizes derived from dimension and diameter")
	assert.Equal(t, 6, p.MaxAggregateSize)

	crit, err := cfg.NewCriterion()
	require.NoError(t, err)
	assert.Equal(t, 0.5, crit.Parameters().Alpha)
	assert.Len(t, cfg.AMGOptions(nil, nil), 3)
}

func TestLoad_PathFromEnvAndPrefix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("smoother:\n  kind: jacobi\n"), 0o600))
	t.Setenv(config.PathEnvVar, path)
	t.Setenv("SOLVER_SMOOTHER_ITERATIONS", "4")

	cfg, err := config.NewLoader(noFiles(t), config.WithEnvPrefix("SOLVER_")).Load()
	require.NoError(t, err)
	assert.Equal(t, "jacobi", cfg.Smoother.Kind)
	assert.Equal(t, 4, cfg.Smoother.Iterations)
}

func TestLoad_Errors(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("criterion: [unclosed"), 0o600))
	_, err := config.NewLoader(config.WithConfigPaths(bad)).Load()
	require.ErrorIs(t, err, config.ErrConfigFile)

	cases := map[string]string{
		"PAAMG_CRITERION_KIND":        "weighted",
		"PAAMG_CRITERION_ALPHA":       "2",
		"PAAMG_SMOOTHER_KIND":         "chebyshev",
		"PAAMG_SMOOTHER_RELAXATION":   "2.5",
		"PAAMG_CYCLE_PRE_STEPS":       "-1",
		"PAAMG_CYCLE_COARSEST_SWEEPS": "0",
		"PAAMG_LOG_LEVEL":             "trace",
		"PAAMG_LOG_OUTPUT":            "file",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			_, err := config.NewLoader(noFiles(t)).Load()
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestConfig_NewObserver(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		cfg, err := config.NewLoader(noFiles(t)).Load()
		require.NoError(t, err)
		reg := prometheus.NewRegistry()

		obs := cfg.NewObserver(reg)
		assert.Nil(t, obs)
		assert.Len(t, cfg.AMGOptions(nil, obs), 3, "a disabled observer is left out")
		n, err := testutil.GatherAndCount(reg)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("enabled from env", func(t *testing.T) {
		t.Setenv("PAAMG_METRICS_ENABLED", "true")
		t.Setenv("PAAMG_METRICS_NAMESPACE", "solver")
		cfg, err := config.NewLoader(noFiles(t)).Load()
		require.NoError(t, err)
		reg := prometheus.NewRegistry()

		obs := cfg.NewObserver(reg)
		require.NotNil(t, obs)
		assert.Len(t, cfg.AMGOptions(nil, obs), 4)

		a, err := builder.Laplacian2D(12, 12)
		require.NoError(t, err)
		op, err := linop.NewMatrixOperator(a)
		require.NoError(t, err)
		cfg.Criterion.CoarsenTarget = 10
		crit, err := cfg.NewCriterion()
		require.NoError(t, err)
		h, err := amg.NewAMG(op, crit, smoother.KindGaussSeidel, cfg.SmootherArgs(), cfg.AMGOptions(nil, obs)...)
		require.NoError(t, err)
		defer func() { _ = h.Close() }()

		v, d := make([]float64, a.N()), make([]float64, a.N())
		d[0] = 1
		h.Apply(v, d)
		n, err := testutil.GatherAndCount(reg, "solver_applications_total", "solver_levels")
		require.NoError(t, err)
		assert.Positive(t, n)
	})
}

func TestNewLogger(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default().Log
	cfg.Output = "file"
	cfg.FilePath = filepath.Join(dir, "logs", "paamg.log")

	logger, closer, err := config.NewLogger(cfg)
	require.NoError(t, err)
	logger.Info("coarse level built", "level", 0)
	logger.Debug("hidden at info level")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(cfg.FilePath)
	require.NoError(t, err)
	assert.True(t, bytes.Contains(data, []byte(`"msg":"coarse level built"`)))
	assert.False(t, bytes.Contains(data, []byte("hidden")))

	cfg = config.Default().Log
	cfg.Format = "yaml"
	_, _, err = config.NewLogger(cfg)
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	cfg = config.Default().Log
	cfg.Format = "text"
	logger, closer, err = config.NewLogger(cfg)
	require.NoError(t, err)
	assert.NotNil(t, logger)
	assert.NoError(t, closer.Close())
}
