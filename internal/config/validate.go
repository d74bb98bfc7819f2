package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atlanticdynamic/litehost/internal/logging/writers"
)

// Validate performs validation of the configuration. The log level is
// normalized, so "warning" becomes "warn".
func (c *Config) Validate() error {
	if c.Version == "" {
		c.Version = VersionUnknown
	}
	if c.Version != VersionLatest {
		return fmt.Errorf("%w: %s", ErrUnsupportedConfigVer, c.Version)
	}

	errz := []error{}

	if lvl, err := LogLevelFromString(strings.ToLower(string(c.Logging.Level))); err != nil {
		errz = append(errz, err)
	} else {
		c.Logging.Level = lvl
	}
	if !c.Logging.Format.IsValid() {
		errz = append(errz, fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Logging.Format))
	}
	if out := strings.TrimSpace(c.Logging.Output); out != "" {
		if err := writers.Validate(out); err != nil {
			errz = append(errz, fmt.Errorf("logging output: %w", err))
		}
	}

	for name, v := range map[string]float64{
		"width_fraction":  c.Window.WidthFraction,
		"height_fraction": c.Window.HeightFraction,
	} {
		if v <= 0 || v > 1 {
			errz = append(errz, fmt.Errorf("%w: %s = %g", ErrInvalidFraction, name, v))
		}
	}

	return errors.Join(errz...)
}
