package config

import (
	"fmt"
	"os"

	"task-manager/internal/errors"

	"github.com/BurntSushi/toml"
)

// Loader handles loading configuration from multiple sources
type Loader struct{}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{}
}

// Overrides holds command line flag overrides. Nil fields leave the
// loaded value untouched.
type Overrides struct {
	ConfigFile *string
	Backend    *string
	DBPath     *string
	LogLevel   *string
	LogFormat  *string
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the TOML config file, when one exists
// 3. Override with TM_* environment variables
func (l *Loader) Load() (*Config, error) {
	return l.LoadWithOverrides(nil)
}

// LoadWithOverrides loads configuration and applies command line
// overrides on top of the file and environment layers.
func (l *Loader) LoadWithOverrides(overrides *Overrides) (*Config, error) {
	cfg := NewConfig()

	if path := resolveConfigFile(overrides); path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, err
		}
	}

	cfg.LoadFromEnvironment()

	if overrides != nil {
		applyOverrides(cfg, overrides)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigFile picks the config file path: the --config flag wins,
// then TM_CONFIG, then the conventional location.
func resolveConfigFile(overrides *Overrides) string {
	if overrides != nil && overrides.ConfigFile != nil && *overrides.ConfigFile != "" {
		return expandPath(*overrides.ConfigFile)
	}
	if path := os.Getenv("TM_CONFIG"); path != "" {
		return expandPath(path)
	}
	return DefaultConfigFile()
}

// loadConfigFile decodes TOML from the given file into cfg. A missing
// file is skipped; a malformed one is a configuration error.
func loadConfigFile(cfg *Config, path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return errors.NewConfigurationError(fmt.Sprintf("config file %s: %v", path, err))
	}
	return nil
}

// applyOverrides applies command line overrides to the configuration
func applyOverrides(cfg *Config, overrides *Overrides) {
	if overrides.Backend != nil {
		cfg.Storage.Backend = *overrides.Backend
	}
	if overrides.DBPath != nil {
		cfg.Storage.Path = *overrides.DBPath
	}
	if overrides.LogLevel != nil {
		cfg.Logging.Level = *overrides.LogLevel
	}
	if overrides.LogFormat != nil {
		cfg.Logging.Format = *overrides.LogFormat
	}
}
