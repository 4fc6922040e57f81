// Package config defines the dockscore configuration structures, their
// defaults and validation, and the viper-backed loader.
package config

import (
	"fmt"
	"math"

	"github.com/turtacn/dockscore/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/dockscore/pkg/terms"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sub-configuration structs
// ─────────────────────────────────────────────────────────────────────────────

// ScoringConfig selects the terms, their weights and batch parallelism.
type ScoringConfig struct {
	// Terms is the ordered term list.  Empty means terms.DefaultSpecs().
	Terms []terms.TermSpec `mapstructure:"terms"`
	// Weights holds one weight per pairwise term of WeightClass followed by
	// the conformation-independent weights.
	Weights     []float64 `mapstructure:"weights"`
	WeightClass int       `mapstructure:"weight_class"`
	Workers     int       `mapstructure:"workers"`
	Progress    bool      `mapstructure:"progress"`
}

// MetricsConfig controls Prometheus instrumentation of batch scoring.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
	Subsystem string `mapstructure:"subsystem"`
	// TextfilePath, when set, receives the exposition after each batch in the
	// node_exporter textfile format.
	TextfilePath string `mapstructure:"textfile_path"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Root
// ─────────────────────────────────────────────────────────────────────────────

// Config is the root configuration object.
type Config struct {
	Log     logging.LogConfig `mapstructure:"log"`
	Scoring ScoringConfig     `mapstructure:"scoring"`
	Metrics MetricsConfig     `mapstructure:"metrics"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Validation
// ─────────────────────────────────────────────────────────────────────────────

// Validate performs semantic validation of a defaulted Config.  Term
// parameters are checked later when the registry is built; here only the
// kinds are checked.
func (c *Config) Validate() error {
	for i, spec := range c.Scoring.Terms {
		if !terms.KnownKind(spec.Kind) {
			return fmt.Errorf("config: scoring.terms[%d]: unknown kind %q", i, spec.Kind)
		}
		if spec.WeightClass < 0 {
			return fmt.Errorf("config: scoring.terms[%d]: weight_class must be ≥ 0, got %d", i, spec.WeightClass)
		}
	}
	if c.Scoring.WeightClass < 1 {
		return fmt.Errorf("config: scoring.weight_class must be ≥ 1, got %d", c.Scoring.WeightClass)
	}
	for i, w := range c.Scoring.Weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("config: scoring.weights[%d] is not finite", i)
		}
	}
	if c.Scoring.Workers < 1 {
		return fmt.Errorf("config: scoring.workers must be ≥ 1, got %d", c.Scoring.Workers)
	}

	if _, ok := logging.ParseLevel(c.Log.Level); !ok {
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}

	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		return fmt.Errorf("config: metrics.namespace is required when metrics are enabled")
	}
	return nil
}

//Personal.AI order the ending
