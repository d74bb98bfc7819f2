package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/atlanticdynamic/litehost/internal/config"
	"github.com/atlanticdynamic/litehost/internal/logging"
	"github.com/atlanticdynamic/litehost/internal/logging/writers"
)

// setupLogging installs the default logger described by cfg. LITE_LOG_LEVEL
// overrides the configured level. The returned function closes the log file.
// Logs sent to stderr go to the provided stream.
func setupLogging(cfg *config.Config, getenv func(string) string, stderr io.Writer) (slog.Handler, func() error, error) {
	level := logging.ResolveLevel(cfg.Logging.Level.String(), getenv)

	w := io.Writer(stderr)
	closeFn := func() error { return nil }
	if writers.ParseWriterType(cfg.Logging.Output) != writers.WriterTypeStderr {
		var err error
		w, closeFn, err = writers.Open(cfg.Logging.Output)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log output: %w", err)
		}
	}

	handler := logging.NewHandler(cfg.Logging.Format.String(), level, w)
	slog.SetDefault(slog.New(handler))
	return handler, closeFn, nil
}
