// Package script manages the lifecycle of embedded Lua environments. Each
// Environment is a fresh interpreter state populated with the same host
// globals; environments never share state and at most one is live at a time.
package script

import (
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"
	"github.com/robbyt/go-loglater"
	lua "github.com/yuin/gopher-lua"

	"github.com/atlanticdynamic/litehost/internal/platform"
)

// Global names injected into every environment.
const (
	GlobalArgs     = "ARGS"
	GlobalPlatform = "PLATFORM"
	GlobalScale    = "SCALE"
	GlobalExeFile  = "EXEFILE"
)

// Library loads host bindings into a fresh state before any payload runs.
type Library func(L *lua.LState) error

// Factory constructs script environments from one process snapshot.
type Factory struct {
	env       platform.Environment
	libraries []Library
	handler   slog.Handler
	logger    *slog.Logger
}

// NewFactory returns a Factory injecting globals from env.
func NewFactory(env platform.Environment, opts ...Option) *Factory {
	f := &Factory{
		env:     env,
		handler: slog.Default().Handler(),
		logger:  slog.Default().WithGroup("script.Factory"),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Construct allocates a new interpreter state, loads the standard and host
// libraries, injects the process globals and installs the exit interception.
func (f *Factory) Construct() (*Environment, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate environment ID: %w", err)
	}

	history := loglater.NewLogCollector(f.handler)
	e := &Environment{
		id:      id,
		state:   lua.NewState(),
		history: history,
		logger: slog.New(history).With(
			"component", "script.Environment",
			"id", id.String(),
		),
	}

	for i, lib := range f.libraries {
		if err := lib(e.state); err != nil {
			e.state.Close()
			return nil, fmt.Errorf("%w (index %d): %w", ErrLibrary, i, err)
		}
	}

	f.inject(e.state)
	e.installExit()

	f.logger.Debug("Environment constructed", "id", id.String(), "libraries", len(f.libraries))
	return e, nil
}

func (f *Factory) inject(L *lua.LState) {
	args := L.NewTable()
	for _, arg := range f.env.Args() {
		args.Append(lua.LString(arg))
	}
	L.SetGlobal(GlobalArgs, args)
	L.SetGlobal(GlobalPlatform, lua.LString(f.env.Platform()))
	L.SetGlobal(GlobalScale, lua.LNumber(f.env.Scale()))
	L.SetGlobal(GlobalExeFile, lua.LString(f.env.ExecutablePath()))
}
