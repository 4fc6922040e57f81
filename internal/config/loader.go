package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	apperrors "github.com/turtacn/dockscore/pkg/errors"
)

// envPrefix is the environment variable prefix used by every setting.
const envPrefix = "DOCKSCORE"

// envKeys are the scalar keys that may be supplied through the environment
// alone.  viper's Unmarshal only sees env values for keys it already knows.
var envKeys = []string{
	"log.level",
	"log.format",
	"scoring.weight_class",
	"scoring.workers",
	"scoring.progress",
	"metrics.enabled",
	"metrics.namespace",
	"metrics.subsystem",
	"metrics.textfile_path",
}

// newViper maps nested keys like "scoring.workers" to DOCKSCORE_SCORING_WORKERS.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, k := range envKeys {
		_ = v.BindEnv(k)
	}
	return v
}

// Load reads the YAML file at configPath, merges DOCKSCORE_* environment
// overrides, applies defaults and validates the result.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeConfigReadFailed,
			fmt.Sprintf("config: failed to read config file %q", configPath))
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config from DOCKSCORE_* environment variables and
// defaults only.
//
//	DOCKSCORE_<SECTION>_<FIELD>   e.g.  DOCKSCORE_SCORING_WORKERS
func LoadFromEnv() (*Config, error) {
	return unmarshalAndFinalize(newViper())
}

func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeConfigInvalid, "config: failed to unmarshal configuration")
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeConfigInvalid, "config: validation failed")
	}
	return cfg, nil
}

// Watch re-reads configPath whenever it changes on disk and hands the new
// Config to onChange.  Changes that fail to parse or validate are reported to
// onError, when non-nil, and otherwise dropped.  Watch does not block.
func Watch(configPath string, onChange func(*Config, fsnotify.Event), onError func(error)) {
	v := newViper()
	v.SetConfigFile(configPath)
	_ = v.ReadInConfig()

	v.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := unmarshalAndFinalize(v)
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		onChange(cfg, e)
	})
	v.WatchConfig()
}

// MustLoad is Load that panics on error.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}

//Personal.AI order the ending
