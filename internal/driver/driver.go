// Package driver sequences the host bootstrap: platform probe, window
// creation, surface binding, then the construct/run/destroy loop over script
// environments until one of them ends without requesting a restart.
package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	lua "github.com/yuin/gopher-lua"

	"github.com/atlanticdynamic/litehost/internal/driver/finitestate"
	"github.com/atlanticdynamic/litehost/internal/payload"
	"github.com/atlanticdynamic/litehost/internal/platform"
	"github.com/atlanticdynamic/litehost/internal/render"
	"github.com/atlanticdynamic/litehost/internal/report"
	"github.com/atlanticdynamic/litehost/internal/script"
	"github.com/atlanticdynamic/litehost/internal/window"
)

// Process exit statuses.
const (
	ExitOK      = 0
	ExitFailure = 1
)

var (
	ErrStartup   = errors.New("host startup failed")
	ErrConstruct = errors.New("failed to construct script environment")
)

// Driver owns the process window and runs script environments one at a time.
type Driver struct {
	prober    Prober
	owner     WindowOwner
	surface   render.Surface
	builder   EnvironmentBuilder
	payload   *string
	args      []string
	stderr    io.Writer
	reportDir string
	notify    script.FatalNotifier
	handler   slog.Handler
	logger    *slog.Logger

	fsm finitestate.Machine
}

// New creates a Driver. Components not supplied through options use the
// native implementations.
func New(opts ...Option) *Driver {
	d := &Driver{
		args:      os.Args,
		stderr:    os.Stderr,
		reportDir: ".",
		handler:   slog.Default().Handler(),
		logger:    slog.Default().WithGroup("driver.Driver"),
	}

	for _, opt := range opts {
		opt(d)
	}

	if d.prober == nil {
		d.prober = platform.New(platform.WithLogHandler(d.handler))
	}
	if d.owner == nil {
		d.owner = window.NewOwner(window.NewGLFWBackend(), window.WithLogHandler(d.handler))
	}
	if d.surface == nil {
		d.surface = render.NewGLSurface(render.WithLogHandler(d.handler))
	}
	if d.notify == nil {
		d.notify = script.DialogNotifier(d.logger)
	}
	if d.builder == nil {
		d.builder = d.scriptBuilder
	}

	return d
}

// scriptBuilder constructs gopher-lua environments carrying the system library.
func (d *Driver) scriptBuilder(env platform.Environment, h *window.Handle) ConstructFunc {
	sys := script.NewSystemLibrary(
		script.WithSystemLogHandler(d.handler),
		script.WithFatalNotifier(d.notify),
		script.WithWindow(h),
		script.WithScale(env.Scale()),
	)
	factory := script.NewFactory(env,
		script.WithLogHandler(d.handler),
		script.WithLibraries(sys.Load),
	)
	return func() (Instance, error) {
		return factory.Construct()
	}
}

// State returns the current driver state, or an empty string before Run.
func (d *Driver) State() string {
	if d.fsm == nil {
		return ""
	}
	return d.fsm.GetState()
}

// Run executes the full bootstrap and returns the process exit status. The
// returned error describes why a non-zero status was chosen, if any.
func (d *Driver) Run(ctx context.Context) (int, error) {
	machine, err := finitestate.New(d.handler)
	if err != nil {
		return ExitFailure, fmt.Errorf("%w: %w", ErrStartup, err)
	}
	d.fsm = machine

	d.prober.PrepareProcess()
	env := d.prober.Snapshot(d.args)
	d.logger.Debug("Process environment\n" + env.String())

	proto, err := d.compilePayload()
	if err != nil {
		fmt.Fprintln(d.stderr, payload.InternalErrorMessage)
		d.transition(finitestate.StateShuttingDown)
		return ExitFailure, err
	}

	h, err := d.owner.Create()
	if err != nil {
		d.transition(finitestate.StateShuttingDown)
		return ExitFailure, fmt.Errorf("%w: %w", ErrStartup, err)
	}

	if err := d.surface.Bind(h); err != nil {
		d.transition(finitestate.StateShuttingDown)
		d.destroyWindow(h)
		return ExitFailure, fmt.Errorf("%w: %w", ErrStartup, err)
	}

	code, err := d.loop(ctx, d.builder(env, h), proto)

	d.transition(finitestate.StateShuttingDown)
	d.destroyWindow(h)
	d.logger.Debug("Shut down", "status", code)
	return code, err
}

func (d *Driver) compilePayload() (*lua.FunctionProto, error) {
	var source string
	if d.payload != nil {
		source = *d.payload
	} else {
		var err error
		source, err = payload.Source(runtime.GOOS)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", payload.ErrCompile, err)
		}
	}
	return payload.Compile(source, payload.ChunkName)
}

// loop constructs, runs and destroys environments until one does not
// request a restart.
func (d *Driver) loop(ctx context.Context, construct ConstructFunc, proto *lua.FunctionProto) (int, error) {
	for restarts := 0; ; restarts++ {
		out, err := d.runInstance(ctx, construct, proto, restarts)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				d.logger.Info("Interrupted", "reason", err)
				return ExitOK, nil
			}
			return ExitFailure, err
		}

		switch {
		case out.Exited:
			return out.ExitCode, nil
		case out.Restart:
			d.transition(finitestate.StateRestarting)
			d.logger.Info("Restart requested", "restarts", restarts+1)
		default:
			return ExitOK, nil
		}
	}
}

// runInstance owns one environment for its whole lifetime and always closes it.
func (d *Driver) runInstance(
	ctx context.Context,
	construct ConstructFunc,
	proto *lua.FunctionProto,
	restarts int,
) (script.Outcome, error) {
	inst, err := construct()
	if err != nil {
		return script.Outcome{}, fmt.Errorf("%w: %w", ErrConstruct, err)
	}
	defer inst.Close()

	d.transition(finitestate.StateRunning)
	logger := d.logger.With("instance", inst.ID().String(), "restarts", restarts)
	logger.Debug("Environment running")

	out, err := inst.Run(ctx, proto)
	if err != nil {
		var rtErr *script.RuntimeError
		if errors.As(err, &rtErr) {
			d.reportRuntimeError(logger, inst, rtErr)
		}
		return script.Outcome{}, err
	}

	logger.Debug("Environment finished", "outcome", out.String())
	return out, nil
}

// reportRuntimeError handles a failure the payload's own handler did not catch.
func (d *Driver) reportRuntimeError(logger *slog.Logger, inst Instance, rtErr *script.RuntimeError) {
	logger.Error("Unhandled script error", "error", rtErr.Message)

	path, err := report.New(rtErr.Message, rtErr.Traceback, d.reportDir).
		WithHistory(inst.PlaybackLogs).
		Write()
	if err != nil {
		logger.Error("Failed to write error report", "error", err)
		return
	}

	d.notify(payload.FatalTitle,
		"An internal error occurred in a critical part of the application.\n\n"+
			"Please verify the file \""+path+"\"")
}

func (d *Driver) destroyWindow(h *window.Handle) {
	if err := d.owner.Destroy(h); err != nil {
		d.logger.Warn("Failed to destroy window", "error", err)
	}
}

func (d *Driver) transition(state string) {
	if d.fsm.GetState() == state {
		return
	}
	if err := d.fsm.Transition(state); err != nil {
		d.logger.Warn("Invalid state transition",
			"from", d.fsm.GetState(),
			"to", state,
			"error", err,
		)
	}
}
