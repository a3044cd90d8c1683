// Package config loads the optional CLI configuration file from the XDG
// config home. The library packages never read configuration; only the
// command surface does.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/cellnotes/pkg/errors"
)

// Config holds CLI preferences
type Config struct {
	// LogLevel overrides the default log level when no -v flag is given;
	// one of "warn", "info", "debug", "trace"
	LogLevel string `toml:"log_level"`
	// Backup writes a .bak copy before overwriting a file in place
	Backup bool `toml:"backup"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		LogLevel: "warn",
		Backup:   true,
	}
}

// Path returns the configuration file location
func Path() string {
	return filepath.Join(xdg.ConfigHome, "cellnotes", "config.toml")
}

// Load reads the configuration file, returning defaults when it does not
// exist
func Load() (*Config, error) {
	return loadFrom(Path())
}

func loadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read %s", path)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
	}
	return cfg, nil
}

// Global configuration instance
var globalConfig *Config

// Initialize sets up the global configuration
func Initialize(cfg *Config) {
	if cfg == nil {
		cfg = Default()
	}
	globalConfig = cfg
}

// Get returns the current configuration
func Get() *Config {
	if globalConfig == nil {
		Initialize(nil)
	}
	return globalConfig
}
