package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/atlanticdynamic/litehost/internal/interpolation"
)

// Locate returns the config file to load: the path named by LITE_HOST_CONFIG,
// else litehost.toml next to the executable if it exists, else "".
func Locate(getenv func(string) string, exePath string) string {
	if getenv != nil {
		if p := strings.TrimSpace(getenv(EnvConfigPath)); p != "" {
			return p
		}
	}
	if exePath == "" {
		return ""
	}
	candidate := filepath.Join(filepath.Dir(exePath), FileName)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return ""
}

// Load resolves the config location and loads it, returning defaults when
// no file is configured. An explicitly named file that is missing is an error.
// getenv also resolves ${VAR} references; an empty value counts as unset.
func Load(getenv func(string) string, exePath string) (*Config, error) {
	path := Locate(getenv, exePath)
	if path == "" {
		return Default(), nil
	}
	cfg, err := NewConfig(path, lookupFrom(getenv))
	if err != nil && errors.Is(err, fs.ErrNotExist) && !explicit(getenv) {
		return Default(), nil
	}
	return cfg, err
}

func explicit(getenv func(string) string) bool {
	return getenv != nil && strings.TrimSpace(getenv(EnvConfigPath)) != ""
}

func lookupFrom(getenv func(string) string) interpolation.LookupFunc {
	return func(name string) (string, bool) {
		if getenv == nil {
			return "", false
		}
		v := getenv(name)
		return v, v != ""
	}
}
