package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupHandlerText(t *testing.T) {
	tests := []struct {
		name        string
		logLevel    string
		debugOutput bool
		infoOutput  bool
		warnOutput  bool
	}{
		{name: "trace level", logLevel: "trace", debugOutput: true, infoOutput: true, warnOutput: true},
		{name: "debug level", logLevel: "debug", debugOutput: true, infoOutput: true, warnOutput: true},
		{name: "info level", logLevel: "info", infoOutput: true, warnOutput: true},
		{name: "warning alias", logLevel: "WARNING", warnOutput: true},
		{name: "error level", logLevel: "error"},
		{name: "empty defaults to info", logLevel: "", infoOutput: true, warnOutput: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := slog.New(SetupHandlerText(tt.logLevel, buf))

			logger.Debug("debug message")
			logger.Info("info message")
			logger.Warn("warn message")
			logger.Error("error message", "key", "value")

			output := buf.String()
			assert.Equal(t, tt.debugOutput, bytes.Contains(buf.Bytes(), []byte("debug message")))
			assert.Equal(t, tt.infoOutput, bytes.Contains(buf.Bytes(), []byte("info message")))
			assert.Equal(t, tt.warnOutput, bytes.Contains(buf.Bytes(), []byte("warn message")))
			assert.Contains(t, output, "error message")
			assert.Contains(t, output, "litehost")
		})
	}
}

func TestSetupHandlerJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(SetupHandlerJSON("warn", buf))

	logger.Info("hidden message")
	logger.Warn("visible message", "instance", "abc")

	output := buf.String()
	assert.NotContains(t, output, "hidden message")
	assert.Contains(t, output, `"msg":"visible message"`)
	assert.Contains(t, output, `"instance":"abc"`)
	assert.Contains(t, output, `"level":"WARN"`)
}

func TestSetupHandlerJSON_TraceAddsSource(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(SetupHandlerJSON("trace", buf))
	logger.Debug("with source")
	assert.Contains(t, buf.String(), `"source"`)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"trace":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, ParseLevel(in))
		})
	}
}

func TestNewHandler(t *testing.T) {
	buf := &bytes.Buffer{}

	assert.IsType(t, &log.Logger{}, NewHandler("text", "info", buf))
	assert.IsType(t, &log.Logger{}, NewHandler("", "info", buf))
	assert.IsType(t, &slog.JSONHandler{}, NewHandler("JSON", "info", buf))
}

func TestResolveLevel(t *testing.T) {
	t.Run("override wins", func(t *testing.T) {
		getenv := func(key string) string {
			if key == EnvLogLevel {
				return " debug "
			}
			return ""
		}
		assert.Equal(t, "debug", ResolveLevel("warn", getenv))
	})

	t.Run("configured level when unset", func(t *testing.T) {
		assert.Equal(t, "warn", ResolveLevel("warn", func(string) string { return "" }))
	})

	t.Run("nil getenv", func(t *testing.T) {
		assert.Equal(t, "error", ResolveLevel("error", nil))
	})
}

func TestSetupLogger(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	SetupLogger("debug")
	logger := slog.Default()
	require.NotNil(t, logger)
	assert.True(t, logger.Enabled(t.Context(), slog.LevelDebug))

	SetupLogger("error")
	assert.False(t, slog.Default().Enabled(t.Context(), slog.LevelWarn))
}
