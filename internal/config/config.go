// Package config loads the optional host configuration file.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/atlanticdynamic/litehost/internal/interpolation"
)

const (
	VersionLatest  = "v1"
	VersionUnknown = "unknown"

	// EnvConfigPath names the environment variable pointing at a config file.
	EnvConfigPath = "LITE_HOST_CONFIG"

	// FileName is the config file looked up next to the executable.
	FileName = "litehost.toml"

	DefaultFraction = 0.8
)

// Config is the host configuration.
type Config struct {
	Version string        `toml:"version"`
	Logging LoggingConfig `toml:"logging"`
	Window  WindowConfig  `toml:"window"`

	// source is the file the config was read from, empty for defaults.
	source string
}

// WindowConfig controls the initial window geometry.
type WindowConfig struct {
	WidthFraction  float64 `toml:"width_fraction"`
	HeightFraction float64 `toml:"height_fraction"`
	Title          string  `toml:"title" env_interpolation:"yes"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Version: VersionLatest,
		Logging: LoggingConfig{
			Format: LogFormatText,
			Level:  LogLevelInfo,
			Output: "stderr",
		},
		Window: WindowConfig{
			WidthFraction:  DefaultFraction,
			HeightFraction: DefaultFraction,
		},
	}
}

// Source returns the path the config was loaded from, or "" for defaults.
func (c *Config) Source() string {
	return c.source
}

// NewConfig loads and validates configuration from a TOML file. ${VAR}
// references are resolved through lookup.
func NewConfig(filePath string, lookup interpolation.LookupFunc) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	cfg, err := NewConfigFromBytes(data, lookup)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	cfg.source = filePath
	return cfg, nil
}

// NewConfigFromBytes loads and validates configuration from TOML bytes.
// Omitted keys keep their default values. ${VAR} references in the log output
// and window title are expanded through lookup; a nil lookup sees no
// variables.
func NewConfigFromBytes(data []byte, lookup interpolation.LookupFunc) (*Config, error) {
	if lookup == nil {
		lookup = func(string) (string, bool) { return "", false }
	}

	// First, extract just the version to check compatibility
	var versionCheck struct {
		Version string `toml:"version"`
	}
	if err := toml.Unmarshal(data, &versionCheck); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}
	if versionCheck.Version != "" && versionCheck.Version != VersionLatest {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigVer, versionCheck.Version)
	}

	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}
	if cfg.Version == "" {
		cfg.Version = VersionLatest
	}
	if err := interpolation.InterpolateStruct(cfg, lookup); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToValidateConfig, err)
	}
	return cfg, nil
}
