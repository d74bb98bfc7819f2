package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/atlanticdynamic/litehost/internal/config"
	"github.com/atlanticdynamic/litehost/internal/driver"
	"github.com/atlanticdynamic/litehost/internal/logging"
	"github.com/atlanticdynamic/litehost/internal/platform"
	"github.com/atlanticdynamic/litehost/internal/window"
)

// bootstrapFunc runs the host with the untouched process arguments and
// returns the exit status.
type bootstrapFunc func(ctx context.Context, args []string) int

// newApp wraps boot in the root command. Flags, help and version handling are
// disabled: every argument belongs to the application.
func newApp(args []string, boot bootstrapFunc, code *int) *cli.Command {
	return &cli.Command{
		Name:            "lite-xl",
		Version:         Version,
		Usage:           "Lua-scripted text editor",
		SkipFlagParsing: true,
		HideHelp:        true,
		HideVersion:     true,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			*code = boot(ctx, args)
			return nil
		},
	}
}

func run(ctx context.Context, args []string, getenv func(string) string, stderr io.Writer) int {
	code := driver.ExitFailure
	boot := func(ctx context.Context, args []string) int {
		return bootstrap(ctx, args, getenv, stderr)
	}
	if err := newApp(args, boot, &code).Run(ctx, args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return driver.ExitFailure
	}
	return code
}

// bootstrap loads the host config, sets up logging and runs the driver.
func bootstrap(ctx context.Context, args []string, getenv func(string) string, stderr io.Writer) int {
	logging.SetupLogger(logging.ResolveLevel(config.LogLevelInfo.String(), getenv))

	exePath := platform.New().ComputeExecutablePath()
	cfg, err := config.Load(getenv, exePath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return driver.ExitFailure
	}

	handler, closeLog, err := setupLogging(cfg, getenv, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return driver.ExitFailure
	}
	defer func() { _ = closeLog() }()

	logger := slog.Default().WithGroup("main")
	logger.Debug("Host configuration\n" + cfg.String())

	d := driver.New(
		driver.WithLogHandler(handler),
		driver.WithArgs(args),
		driver.WithStderr(stderr),
		driver.WithProber(platform.New(platform.WithLogHandler(handler))),
		driver.WithWindowOwner(window.NewOwner(
			window.NewGLFWBackend(),
			window.WithLogHandler(handler),
			window.WithFractions(cfg.Window.WidthFraction, cfg.Window.HeightFraction),
			window.WithTitle(cfg.Window.Title),
		)),
	)

	code, err := d.Run(ctx)
	if err != nil {
		logger.Error("Host exited with error", "status", code, "error", err)
	}
	return code
}
