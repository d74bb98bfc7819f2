package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlanticdynamic/litehost/internal/interpolation"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, VersionLatest, cfg.Version)
	assert.Equal(t, LogFormatText, cfg.Logging.Format)
	assert.Equal(t, LogLevelInfo, cfg.Logging.Level)
	assert.InDelta(t, 0.8, cfg.Window.WidthFraction, 1e-9)
	assert.InDelta(t, 0.8, cfg.Window.HeightFraction, 1e-9)
	assert.Empty(t, cfg.Source())
}

func TestNewConfigFromBytes(t *testing.T) {
	t.Run("full file", func(t *testing.T) {
		cfg, err := NewConfigFromBytes([]byte(`
version = "v1"

[logging]
level = "debug"
format = "json"
output = "stdout"

[window]
width_fraction = 0.5
height_fraction = 0.75
title = "lite-xl"
`), nil)
		require.NoError(t, err)
		assert.Equal(t, LogLevelDebug, cfg.Logging.Level)
		assert.Equal(t, LogFormatJSON, cfg.Logging.Format)
		assert.Equal(t, "stdout", cfg.Logging.Output)
		assert.InDelta(t, 0.5, cfg.Window.WidthFraction, 1e-9)
		assert.InDelta(t, 0.75, cfg.Window.HeightFraction, 1e-9)
		assert.Equal(t, "lite-xl", cfg.Window.Title)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		cfg, err := NewConfigFromBytes([]byte("[window]\ntitle = \"editor\"\n"), nil)
		require.NoError(t, err)
		assert.Equal(t, VersionLatest, cfg.Version)
		assert.Equal(t, LogLevelInfo, cfg.Logging.Level)
		assert.InDelta(t, DefaultFraction, cfg.Window.WidthFraction, 1e-9)
		assert.Equal(t, "editor", cfg.Window.Title)
	})

	t.Run("level is normalized", func(t *testing.T) {
		cfg, err := NewConfigFromBytes([]byte("[logging]\nlevel = \"WARNING\"\n"), nil)
		require.NoError(t, err)
		assert.Equal(t, LogLevelWarn, cfg.Logging.Level)
	})

	t.Run("empty file", func(t *testing.T) {
		cfg, err := NewConfigFromBytes(nil, nil)
		require.NoError(t, err)
		assert.Equal(t, Default().Window, cfg.Window)
	})

	t.Run("expands environment references", func(t *testing.T) {
		lookup := func(name string) (string, bool) {
			if name == "LITEHOST_TEST_LOGDIR" {
				return "/var/log/lite", true
			}
			return "", false
		}
		cfg, err := NewConfigFromBytes([]byte(`
[logging]
output = "file://${LITEHOST_TEST_LOGDIR}/host.log"

[window]
title = "${LITEHOST_TEST_UNSET:lite-xl}"
`), lookup)
		require.NoError(t, err)
		assert.Equal(t, "file:///var/log/lite/host.log", cfg.Logging.Output)
		assert.Equal(t, "lite-xl", cfg.Window.Title)
	})

	t.Run("undefined environment reference", func(t *testing.T) {
		_, err := NewConfigFromBytes([]byte("[window]\ntitle = \"${LITEHOST_TEST_UNSET}\"\n"), nil)
		require.ErrorIs(t, err, ErrFailedToLoadConfig)
		require.ErrorIs(t, err, interpolation.ErrUndefinedVar)
	})

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "unsupported version", input: `version = "v2"`, wantErr: ErrUnsupportedConfigVer},
		{name: "malformed toml", input: `[window`, wantErr: ErrFailedToLoadConfig},
		{name: "unknown key", input: "[window]\nfullscreen = true\n", wantErr: ErrFailedToLoadConfig},
		{name: "zero fraction", input: "[window]\nwidth_fraction = 0.0\n", wantErr: ErrInvalidFraction},
		{name: "fraction above one", input: "[window]\nheight_fraction = 1.5\n", wantErr: ErrInvalidFraction},
		{name: "bad level", input: "[logging]\nlevel = \"loud\"\n", wantErr: ErrInvalidLogLevel},
		{name: "bad format", input: "[logging]\nformat = \"xml\"\n", wantErr: ErrInvalidLogFormat},
		{name: "bad output", input: "[logging]\noutput = \"udp://host:1\"\n", wantErr: ErrFailedToValidateConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfigFromBytes([]byte(tt.input), nil)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("joins validation errors", func(t *testing.T) {
		_, err := NewConfigFromBytes([]byte("[window]\nwidth_fraction = -1.0\nheight_fraction = 2.0\n[logging]\nlevel = \"x\"\n"), nil)
		require.ErrorIs(t, err, ErrFailedToValidateConfig)
		require.ErrorIs(t, err, ErrInvalidFraction)
		require.ErrorIs(t, err, ErrInvalidLogLevel)
		assert.Contains(t, err.Error(), "width_fraction")
		assert.Contains(t, err.Error(), "height_fraction")
	})
}

func TestNewConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("[logging]\nlevel = \"warn\"\n"), 0o644))

	cfg, err := NewConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, LogLevelWarn, cfg.Logging.Level)
	assert.Equal(t, path, cfg.Source())

	_, err = NewConfig(filepath.Join(t.TempDir(), "missing.toml"), nil)
	require.ErrorIs(t, err, ErrFailedToLoadConfig)
}

func TestLocateAndLoad(t *testing.T) {
	exeDir := t.TempDir()
	exe := filepath.Join(exeDir, "lite-xl")
	noEnv := func(string) string { return "" }

	t.Run("defaults without file", func(t *testing.T) {
		assert.Empty(t, Locate(noEnv, exe))
		cfg, err := Load(noEnv, exe)
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("file next to executable", func(t *testing.T) {
		path := filepath.Join(exeDir, FileName)
		require.NoError(t, os.WriteFile(path, []byte("[window]\ntitle = \"side\"\n"), 0o644))
		t.Cleanup(func() { _ = os.Remove(path) })

		assert.Equal(t, path, Locate(noEnv, exe))
		cfg, err := Load(noEnv, exe)
		require.NoError(t, err)
		assert.Equal(t, "side", cfg.Window.Title)
	})

	t.Run("environment override", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.toml")
		require.NoError(t, os.WriteFile(path, []byte("[window]\ntitle = \"env\"\n"), 0o644))
		getenv := func(k string) string {
			if k == EnvConfigPath {
				return path
			}
			return ""
		}

		assert.Equal(t, path, Locate(getenv, exe))
		cfg, err := Load(getenv, exe)
		require.NoError(t, err)
		assert.Equal(t, "env", cfg.Window.Title)
	})

	t.Run("references resolve through getenv only", func(t *testing.T) {
		t.Setenv("LITEHOST_TEST_TITLE", "from process")
		path := filepath.Join(t.TempDir(), "custom.toml")
		require.NoError(t, os.WriteFile(path, []byte(
			"[window]\ntitle = \"${LITEHOST_TEST_TITLE:fallback}\"\n"+
				"[logging]\noutput = \"file://${LOG_DIR}/host.log\"\n"), 0o644))
		getenv := func(k string) string {
			switch k {
			case EnvConfigPath:
				return path
			case "LOG_DIR":
				return "/tmp/lite"
			}
			return ""
		}

		cfg, err := Load(getenv, exe)
		require.NoError(t, err)
		assert.Equal(t, "fallback", cfg.Window.Title)
		assert.Equal(t, "file:///tmp/lite/host.log", cfg.Logging.Output)
	})

	t.Run("explicit missing file is an error", func(t *testing.T) {
		getenv := func(string) string { return filepath.Join(t.TempDir(), "nope.toml") }
		_, err := Load(getenv, exe)
		require.ErrorIs(t, err, ErrFailedToLoadConfig)
	})
}

func TestConfigString(t *testing.T) {
	out := Default().String()
	assert.Contains(t, out, "Host Config (v1)")
	assert.Contains(t, out, "defaults")
	assert.Contains(t, out, "width_fraction")
	assert.Contains(t, out, "stderr")
}

func TestLogLevelFromString(t *testing.T) {
	tests := map[string]LogLevel{
		"trace":   LogLevelTrace,
		"debug":   LogLevelDebug,
		"info":    LogLevelInfo,
		"warning": LogLevelWarn,
		"error":   LogLevelError,
		"":        LogLevelUnspecified,
	}
	for in, want := range tests {
		got, err := LogLevelFromString(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := LogLevelFromString("fatal")
	require.ErrorIs(t, err, ErrInvalidLogLevel)
}
