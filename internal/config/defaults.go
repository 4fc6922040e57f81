package config

import (
	"runtime"

	"github.com/turtacn/dockscore/pkg/terms"
)

const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultWeightClass = terms.ClassWeighted

	DefaultMetricsNamespace = "dockscore"
	DefaultMetricsSubsystem = "scoring"
)

// ApplyDefaults fills every zero-value field in cfg.  Explicit values are left
// unchanged.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	// ── Log ───────────────────────────────────────────────────────────────────
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}

	// ── Scoring ───────────────────────────────────────────────────────────────
	if len(cfg.Scoring.Terms) == 0 {
		cfg.Scoring.Terms = terms.DefaultSpecs()
	}
	if len(cfg.Scoring.Weights) == 0 {
		cfg.Scoring.Weights = terms.DefaultWeights()
	}
	if cfg.Scoring.WeightClass == 0 {
		cfg.Scoring.WeightClass = DefaultWeightClass
	}
	if cfg.Scoring.Workers == 0 {
		cfg.Scoring.Workers = runtime.NumCPU()
	}

	// ── Metrics ───────────────────────────────────────────────────────────────
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Metrics.Subsystem == "" {
		cfg.Metrics.Subsystem = DefaultMetricsSubsystem
	}
}

// Default returns a fully defaulted Config without reading any source.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

//Personal.AI order the ending
