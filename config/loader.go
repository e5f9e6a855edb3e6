// SPDX-License-Identifier: MIT
// Package: paamg/config
//
// loader.go: layered loading: defaults, then an optional YAML file, then
// environment variables, each overriding the previous layer.

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// DefaultEnvPrefix prefixes every environment override, e.g.
	// PAAMG_CRITERION_ALPHA=0.25.
	DefaultEnvPrefix = "PAAMG_"
	// PathEnvVar names an explicit configuration file.
	PathEnvVar = "PAAMG_CONFIG_PATH"
)

// Loader reads a Config from its sources.
type Loader struct {
	k           *koanf.Koanf
	configPaths []string
	envPrefix   string
}

// LoaderOption customizes a Loader.
type LoaderOption func(*Loader)

// WithConfigPaths replaces the file search list. The first existing file wins.
func WithConfigPaths(paths ...string) LoaderOption {
	cp := append([]string(nil), paths...)
	return func(l *Loader) { l.configPaths = cp }
}

// WithEnvPrefix replaces DefaultEnvPrefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) { l.envPrefix = prefix }
}

// NewLoader returns a loader searching paamg.yaml and config/paamg.yaml.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k:           koanf.New("."),
		configPaths: []string{"paamg.yaml", "config/paamg.yaml"},
		envPrefix:   DefaultEnvPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load merges the sources, unmarshals and validates the result.
// A missing file is not an error; an unreadable or malformed one is.
func (l *Loader) Load() (*Config, error) {
	if err := l.k.Load(confmap.Provider(defaultMap(), "."), nil); err != nil {
		return nil, fmt.Errorf("Loader.Load: defaults: %w", err)
	}
	if err := l.loadFile(); err != nil {
		return nil, err
	}
	if err := l.k.Load(env.ProviderWithValue(l.envPrefix, ".", l.envKey), nil); err != nil {
		return nil, fmt.Errorf("Loader.Load: env: %w", err)
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("Loader.Load: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (l *Loader) loadFile() error {
	paths := l.configPaths
	if p := os.Getenv(PathEnvVar); p != "" {
		paths = []string{p}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := l.k.Load(file.Provider(p), yaml.Parser()); err != nil {
			return fmt.Errorf("Loader.Load: %s: %w: %w", p, ErrConfigFile, err)
		}
		return nil
	}

	return nil
}

// envKey maps PAAMG_CRITERION_MAX_DISTANCE to criterion.max_distance: the
// first underscore after the prefix separates the section from the field.
func (l *Loader) envKey(key, value string) (string, any) {
	key = strings.ToLower(strings.TrimPrefix(key, l.envPrefix))
	section, field, ok := strings.Cut(key, "_")
	if !ok || section == "config" {
		return "", nil // PAAMG_CONFIG_PATH and malformed keys are not config values
	}

	return section + "." + field, value
}

// defaultMap flattens Default into koanf keys.
func defaultMap() map[string]any {
	d := Default()
	c, s, y, g, m := d.Criterion, d.Smoother, d.Cycle, d.Log, d.Metrics

	return map[string]any{
		"criterion.kind":               c.Kind,
		"criterion.alpha":              c.Alpha,
		"criterion.beta":               c.Beta,
		"criterion.max_distance":       c.MaxDistance,
		"criterion.min_aggregate_size": c.MinAggregateSize,
		"criterion.max_aggregate_size": c.MaxAggregateSize,
		"criterion.skip_isolated":      c.SkipIsolated,
		"criterion.damping_factor":     c.DampingFactor,
		"criterion.max_level":          c.MaxLevel,
		"criterion.coarsen_target":     c.CoarsenTarget,
		"criterion.min_coarsen_rate":   c.MinCoarsenRate,
		"criterion.dimension":          c.Dimension,
		"criterion.diameter":           c.Diameter,
		"criterion.anisotropic":        c.Anisotropic,

		"smoother.kind":       s.Kind,
		"smoother.iterations": s.Iterations,
		"smoother.relaxation": s.Relaxation,

		"cycle.pre_steps":       y.PreSteps,
		"cycle.post_steps":      y.PostSteps,
		"cycle.coarsest_sweeps": y.CoarsestSweeps,

		"log.level":       g.Level,
		"log.format":      g.Format,
		"log.output":      g.Output,
		"log.file_path":   g.FilePath,
		"log.max_size":    g.MaxSize,
		"log.max_backups": g.MaxBackups,
		"log.max_age":     g.MaxAge,
		"log.compress":    g.Compress,

		"metrics.enabled":   m.Enabled,
		"metrics.namespace": m.Namespace,
	}
}

// Load reads the configuration with the default loader.
func Load() (*Config, error) {
	return NewLoader().Load()
}
