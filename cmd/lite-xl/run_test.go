package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlanticdynamic/litehost/internal/config"
	"github.com/atlanticdynamic/litehost/internal/driver"
)

func TestNewApp_PassesArgumentsThrough(t *testing.T) {
	tests := [][]string{
		{"lite-xl"},
		{"lite-xl", "notes.md"},
		{"lite-xl", "--help", "-v", "--version", "help"},
		{"lite-xl", "--", "-x", "dir/"},
	}
	for _, args := range tests {
		t.Run(args[len(args)-1], func(t *testing.T) {
			var got []string
			code := -1
			boot := func(_ context.Context, a []string) int {
				got = a
				return 7
			}

			require.NoError(t, newApp(args, boot, &code).Run(t.Context(), args))
			assert.Equal(t, args, got)
			assert.Equal(t, 7, code)
		})
	}
}

func TestBootstrap_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window]\nwidth_fraction = 3.0\n"), 0o644))
	getenv := func(k string) string {
		if k == config.EnvConfigPath {
			return path
		}
		return ""
	}

	var stderr bytes.Buffer
	code := run(t.Context(), []string{"lite-xl"}, getenv, &stderr)
	assert.Equal(t, driver.ExitFailure, code)
	assert.Contains(t, stderr.String(), "Error: ")
	assert.Contains(t, stderr.String(), "width_fraction")
}

func TestBootstrap_UnsupportedLogOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host.toml")
	require.NoError(t, os.WriteFile(path, []byte("[logging]\noutput = \"file://\"\n"), 0o644))
	getenv := func(k string) string {
		if k == config.EnvConfigPath {
			return path
		}
		return ""
	}

	var stderr bytes.Buffer
	code := bootstrap(t.Context(), []string{"lite-xl"}, getenv, &stderr)
	assert.Equal(t, driver.ExitFailure, code)
	assert.Contains(t, stderr.String(), "Error: ")
}
