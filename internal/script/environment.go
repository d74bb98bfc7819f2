package script

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"
	"github.com/robbyt/go-loglater"
	"github.com/robbyt/go-loglater/storage"
	lua "github.com/yuin/gopher-lua"
)

// Environment is one script environment instance. It exclusively owns its
// interpreter state until Close.
type Environment struct {
	id      uuid.UUID
	state   *lua.LState
	history *loglater.LogCollector
	logger  *slog.Logger

	cancel   context.CancelFunc
	exited   bool
	exitCode int
	closed   bool
}

// ID returns the unique identifier of this instance.
func (e *Environment) ID() uuid.UUID {
	return e.id
}

// State exposes the interpreter state for host libraries and tests.
func (e *Environment) State() *lua.LState {
	return e.state
}

// Run instantiates the compiled payload and calls it in protected mode.
//
// A truthy return value requests a restart. A call to os.exit anywhere in the
// script ends execution and is reported as an exited Outcome. Cancelling ctx
// aborts the script and returns the context error. Any other error escaping
// the payload is returned as a *RuntimeError.
func (e *Environment) Run(ctx context.Context, proto *lua.FunctionProto) (Outcome, error) {
	if e.closed {
		return Outcome{}, ErrClosed
	}
	if proto == nil {
		return Outcome{}, ErrNilPayload
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	e.cancel = cancel
	e.state.SetContext(runCtx)
	defer e.state.RemoveContext()

	e.logger.Debug("Running payload")
	e.state.Push(e.state.NewFunctionFromProto(proto))
	err := e.state.PCall(0, 1, nil)

	if e.exited {
		e.logger.Debug("Payload exited", "code", e.exitCode)
		return Outcome{Exited: true, ExitCode: e.exitCode}, nil
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			e.logger.Debug("Payload interrupted", "error", ctxErr)
			return Outcome{}, ctxErr
		}
		rtErr := toRuntimeError(err)
		e.logger.Error("Payload failed", "error", rtErr.Message)
		return Outcome{}, rtErr
	}

	ret := e.state.Get(-1)
	e.state.Pop(1)
	out := Outcome{Restart: lua.LVAsBool(ret)}
	e.logger.Debug("Payload returned", "outcome", out.String())
	return out, nil
}

func toRuntimeError(err error) *RuntimeError {
	var apiErr *lua.ApiError
	if errors.As(err, &apiErr) {
		msg := err.Error()
		if apiErr.Object != nil {
			msg = apiErr.Object.String()
		}
		return &RuntimeError{Message: msg, Traceback: trimTraceback(apiErr.StackTrace)}
	}
	return &RuntimeError{Message: err.Error()}
}

// installExit replaces os.exit so a script can end the run without
// terminating the host process.
func (e *Environment) installExit() {
	osTable, ok := e.state.GetGlobal(lua.OsLibName).(*lua.LTable)
	if !ok {
		return
	}
	osTable.RawSetString("exit", e.state.NewFunction(e.exit))
}

func (e *Environment) exit(L *lua.LState) int {
	code := 0
	switch v := L.Get(1).(type) {
	case lua.LNumber:
		code = int(v)
	case lua.LBool:
		if !bool(v) {
			code = 1
		}
	}
	e.exited = true
	e.exitCode = code
	if e.cancel != nil {
		e.cancel()
	}
	L.RaiseError("os.exit(%d)", code)
	return 0
}

// Globals returns the injected host globals as Go values.
func (e *Environment) Globals() map[string]any {
	if e.closed {
		return nil
	}
	L := e.state

	var args []string
	if t, ok := L.GetGlobal(GlobalArgs).(*lua.LTable); ok {
		args = make([]string, 0, t.Len())
		for i := 1; i <= t.Len(); i++ {
			args = append(args, t.RawGetInt(i).String())
		}
	}

	globals := map[string]any{GlobalArgs: args}
	if v, ok := L.GetGlobal(GlobalPlatform).(lua.LString); ok {
		globals[GlobalPlatform] = string(v)
	}
	if v, ok := L.GetGlobal(GlobalScale).(lua.LNumber); ok {
		globals[GlobalScale] = float64(v)
	}
	if v, ok := L.GetGlobal(GlobalExeFile).(lua.LString); ok {
		globals[GlobalExeFile] = string(v)
	}
	return globals
}

// Logs returns the records logged on behalf of this instance.
func (e *Environment) Logs() []storage.Record {
	return e.history.GetLogs()
}

// PlaybackLogs replays the instance's log history into handler.
func (e *Environment) PlaybackLogs(handler slog.Handler) error {
	if err := e.history.PlayLogs(handler); err != nil {
		return fmt.Errorf("failed to replay logs for %s: %w", e.id, err)
	}
	return nil
}

// Close releases the interpreter state. Further calls are no-ops.
func (e *Environment) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.state.Close()
	e.logger.Debug("Environment closed")
}

// Closed reports whether Close has been called.
func (e *Environment) Closed() bool {
	return e.closed
}
