// SPDX-License-Identifier: MIT
// Package: paamg/config
//
// config.go: typed configuration and its conversion to solver arguments.

package config

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/paamg/aggregation"
	"github.com/katalvlaran/paamg/amg"
	"github.com/katalvlaran/paamg/metrics"
	"github.com/katalvlaran/paamg/smoother"
	"github.com/prometheus/client_golang/prometheus"
)

// Config is the full preconditioner configuration.
type Config struct {
	Criterion CriterionConfig `koanf:"criterion"`
	Smoother  SmootherConfig  `koanf:"smoother"`
	Cycle     CycleConfig     `koanf:"cycle"`
	Log       LogConfig       `koanf:"log"`
	Metrics   MetricsConfig   `koanf:"metrics"`
}

// CriterionConfig drives aggregation and the depth of the hierarchy.
//
// When Diameter > 0 the aggregate sizes and MaxDistance are derived from
// Dimension and Diameter (see aggregation.Parameters.SetDefaultValuesIsotropic)
// and the explicit size fields are ignored.
type CriterionConfig struct {
	Kind             string  `koanf:"kind"` // symmetric | unsymmetric
	Alpha            float64 `koanf:"alpha"`
	Beta             float64 `koanf:"beta"`
	MaxDistance      int     `koanf:"max_distance"`
	MinAggregateSize int     `koanf:"min_aggregate_size"`
	MaxAggregateSize int     `koanf:"max_aggregate_size"`
	SkipIsolated     bool    `koanf:"skip_isolated"`
	DampingFactor    float64 `koanf:"damping_factor"`
	MaxLevel         int     `koanf:"max_level"`
	CoarsenTarget    int     `koanf:"coarsen_target"`
	MinCoarsenRate   float64 `koanf:"min_coarsen_rate"`

	Dimension   int  `koanf:"dimension"`
	Diameter    int  `koanf:"diameter"`
	Anisotropic bool `koanf:"anisotropic"`
}

// SmootherConfig selects the relaxation applied on every level.
type SmootherConfig struct {
	Kind       string  `koanf:"kind"` // jacobi | gauss-seidel | ssor
	Iterations int     `koanf:"iterations"`
	Relaxation float64 `koanf:"relaxation"`
}

// CycleConfig holds the smoothing steps around the coarse correction and
// the sweeps of a coarsest level too large for the direct solver.
type CycleConfig struct {
	PreSteps       int `koanf:"pre_steps"`
	PostSteps      int `koanf:"post_steps"`
	CoarsestSweeps int `koanf:"coarsest_sweeps"`
}

// LogConfig configures the slog logger built by NewLogger.
type LogConfig struct {
	Level      string `koanf:"level"`  // debug | info | warn | error
	Format     string `koanf:"format"` // json | text
	Output     string `koanf:"output"` // stdout | stderr | file
	FilePath   string `koanf:"file_path"`
	MaxSize    int    `koanf:"max_size"` // MB
	MaxBackups int    `koanf:"max_backups"`
	MaxAge     int    `koanf:"max_age"` // days
	Compress   bool   `koanf:"compress"`
}

// MetricsConfig enables the Prometheus observer built by NewObserver.
type MetricsConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Namespace string `koanf:"namespace"`
}

// Default returns the configuration used when no source overrides a key.
func Default() Config {
	p := aggregation.DefaultParameters()
	a := smoother.DefaultArgs()

	return Config{
		Criterion: CriterionConfig{
			Kind:             aggregation.Symmetric.String(),
			Alpha:            p.Alpha,
			Beta:             p.Beta,
			MaxDistance:      p.MaxDistance,
			MinAggregateSize: p.MinAggregateSize,
			MaxAggregateSize: p.MaxAggregateSize,
			DampingFactor:    p.ProlongationDampingFactor,
			MaxLevel:         p.MaxLevel,
			CoarsenTarget:    p.CoarsenTarget,
			MinCoarsenRate:   p.MinCoarsenRate,
		},
		Smoother: SmootherConfig{
			Kind:       smoother.KindGaussSeidel.String(),
			Iterations: a.Iterations,
			Relaxation: a.RelaxationFactor,
		},
		Cycle: CycleConfig{
			PreSteps:       amg.DefaultPreSteps,
			PostSteps:      amg.DefaultPostSteps,
			CoarsestSweeps: amg.DefaultCoarsestSweeps,
		},
		Log: LogConfig{
			Level:      "info",
			Format:     "json",
			Output:     "stderr",
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     7,
		},
		Metrics: MetricsConfig{Namespace: "paamg"},
	}
}

// Validate reports the first invalid section.
func (c Config) Validate() error {
	if _, err := c.CriterionKind(); err != nil {
		return fmt.Errorf("Config.Validate: criterion: %w: %w", ErrInvalidConfig, err)
	}
	if err := c.Parameters().Validate(); err != nil {
		return fmt.Errorf("Config.Validate: criterion: %w: %w", ErrInvalidConfig, err)
	}
	if c.Criterion.Diameter > 0 && c.Criterion.Dimension < 1 {
		return fmt.Errorf("Config.Validate: dimension=%d: %w", c.Criterion.Dimension, ErrInvalidConfig)
	}
	if _, err := c.SmootherKind(); err != nil {
		return fmt.Errorf("Config.Validate: smoother: %w: %w", ErrInvalidConfig, err)
	}
	if err := c.SmootherArgs().Validate(); err != nil {
		return fmt.Errorf("Config.Validate: smoother: %w: %w", ErrInvalidConfig, err)
	}
	if c.Cycle.PreSteps < 0 || c.Cycle.PostSteps < 0 {
		return fmt.Errorf("Config.Validate: cycle steps %d/%d: %w",
			c.Cycle.PreSteps, c.Cycle.PostSteps, ErrInvalidConfig)
	}
	if c.Cycle.CoarsestSweeps < 1 {
		return fmt.Errorf("Config.Validate: coarsest sweeps %d: %w", c.Cycle.CoarsestSweeps, ErrInvalidConfig)
	}

	return c.Log.validate()
}

func (l LogConfig) validate() error {
	if _, ok := levels[l.Level]; !ok {
		return fmt.Errorf("Config.Validate: log.level=%q: %w", l.Level, ErrInvalidConfig)
	}
	switch l.Format {
	case "json", "text":
	default:
		return fmt.Errorf("Config.Validate: log.format=%q: %w", l.Format, ErrInvalidConfig)
	}
	switch l.Output {
	case "stdout", "stderr":
	case "file":
		if l.FilePath == "" {
			return fmt.Errorf("Config.Validate: log.file_path is required for file output: %w", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("Config.Validate: log.output=%q: %w", l.Output, ErrInvalidConfig)
	}

	return nil
}

// CriterionKind parses Criterion.Kind.
func (c Config) CriterionKind() (aggregation.Kind, error) {
	return aggregation.ParseKind(c.Criterion.Kind)
}

// Parameters converts the criterion section.
func (c Config) Parameters() aggregation.Parameters {
	cc := c.Criterion
	p := aggregation.Parameters{
		Alpha:                     cc.Alpha,
		Beta:                      cc.Beta,
		MaxDistance:               cc.MaxDistance,
		MinAggregateSize:          cc.MinAggregateSize,
		MaxAggregateSize:          cc.MaxAggregateSize,
		SkipIsolated:              cc.SkipIsolated,
		ProlongationDampingFactor: cc.DampingFactor,
		MaxLevel:                  cc.MaxLevel,
		CoarsenTarget:             cc.CoarsenTarget,
		MinCoarsenRate:            cc.MinCoarsenRate,
	}
	switch {
	case cc.Diameter > 0 && cc.Anisotropic:
		p.SetDefaultValuesAnisotropic(cc.Dimension, cc.Diameter)
	case cc.Diameter > 0:
		p.SetDefaultValuesIsotropic(cc.Dimension, cc.Diameter)
	}

	return p
}

// NewCriterion builds the configured coarsening criterion.
func (c Config) NewCriterion() (aggregation.Criterion, error) {
	kind, err := c.CriterionKind()
	if err != nil {
		return nil, err
	}
	return aggregation.NewCriterion(kind, c.Parameters())
}

// SmootherKind parses Smoother.Kind.
func (c Config) SmootherKind() (smoother.Kind, error) {
	return smoother.ParseKind(c.Smoother.Kind)
}

// SmootherArgs converts the smoother section.
func (c Config) SmootherArgs() smoother.Args {
	return smoother.Args{Iterations: c.Smoother.Iterations, RelaxationFactor: c.Smoother.Relaxation}
}

// AMGOptions returns the cycle options plus a logger and, when given, an
// observer. A nil logger or observer is left out.
func (c Config) AMGOptions(logger *slog.Logger, obs amg.Observer) []amg.Option {
	opts := []amg.Option{
		amg.WithPreSteps(c.Cycle.PreSteps),
		amg.WithPostSteps(c.Cycle.PostSteps),
		amg.WithCoarsestSweeps(c.Cycle.CoarsestSweeps),
	}
	if logger != nil {
		opts = append(opts, amg.WithLogger(logger))
	}
	if obs != nil {
		opts = append(opts, amg.WithObserver(obs))
	}

	return opts
}

// NewObserver registers the Prometheus observer with reg under the
// configured namespace. It returns nil when metrics are disabled, which
// AMGOptions leaves out.
func (c Config) NewObserver(reg prometheus.Registerer) amg.Observer {
	if !c.Metrics.Enabled {
		return nil
	}
	return metrics.NewObserver(reg, c.Metrics.Namespace)
}
