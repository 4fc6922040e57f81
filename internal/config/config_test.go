package config_test

import (
	"math"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/dockscore/internal/config"
	"github.com/turtacn/dockscore/pkg/terms"
)

func TestApplyDefaults_FillsZeroValues(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	assert.Equal(t, config.DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, config.DefaultLogFormat, cfg.Log.Format)
	assert.Equal(t, terms.DefaultSpecs(), cfg.Scoring.Terms)
	assert.Equal(t, terms.DefaultWeights(), cfg.Scoring.Weights)
	assert.Equal(t, terms.ClassWeighted, cfg.Scoring.WeightClass)
	assert.Equal(t, runtime.NumCPU(), cfg.Scoring.Workers)
	assert.False(t, cfg.Scoring.Progress)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, config.DefaultMetricsNamespace, cfg.Metrics.Namespace)
	assert.Equal(t, config.DefaultMetricsSubsystem, cfg.Metrics.Subsystem)
	assert.NoError(t, cfg.Validate())
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	cfg.Log.Level = "debug"
	cfg.Scoring.Terms = []terms.TermSpec{{Kind: terms.KindNumTorsAdd, WeightClass: 2}}
	cfg.Scoring.Weights = []float64{0.25}
	cfg.Scoring.WeightClass = 2
	cfg.Scoring.Workers = 3
	cfg.Metrics.Namespace = "vina"

	config.ApplyDefaults(cfg)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Len(t, cfg.Scoring.Terms, 1)
	assert.Equal(t, []float64{0.25}, cfg.Scoring.Weights)
	assert.Equal(t, 2, cfg.Scoring.WeightClass)
	assert.Equal(t, 3, cfg.Scoring.Workers)
	assert.Equal(t, "vina", cfg.Metrics.Namespace)
}

func TestApplyDefaults_NilIsNoop(t *testing.T) {
	t.Parallel()
	assert.NotPanics(t, func() { config.ApplyDefaults(nil) })
}

func TestConfig_Validate_Rejections(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"unknown kind", func(c *config.Config) {
			c.Scoring.Terms = []terms.TermSpec{{Kind: "lennard_jones"}}
		}, "unknown kind"},
		{"negative term class", func(c *config.Config) {
			c.Scoring.Terms = []terms.TermSpec{{Kind: terms.KindGauss, WeightClass: -1}}
		}, "scoring.terms[0]"},
		{"weight class zero", func(c *config.Config) { c.Scoring.WeightClass = 0 }, "scoring.weight_class"},
		{"nan weight", func(c *config.Config) { c.Scoring.Weights[2] = math.NaN() }, "scoring.weights[2]"},
		{"inf weight", func(c *config.Config) { c.Scoring.Weights[0] = math.Inf(-1) }, "scoring.weights[0]"},
		{"no workers", func(c *config.Config) { c.Scoring.Workers = 0 }, "scoring.workers"},
		{"bad level", func(c *config.Config) { c.Log.Level = "verbose" }, "log.level"},
		{"bad format", func(c *config.Config) { c.Log.Format = "xml" }, "log.format"},
		{"metrics without namespace", func(c *config.Config) {
			c.Metrics.Enabled = true
			c.Metrics.Namespace = ""
		}, "metrics.namespace"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := config.Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestConfig_Validate_LevelIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Log.Level = "WARN"
	cfg.Log.Format = "console"
	assert.NoError(t, cfg.Validate())
}

//Personal.AI order the ending
