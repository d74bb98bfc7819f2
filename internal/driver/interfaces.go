package driver

import (
	"context"
	"log/slog"

	"github.com/gofrs/uuid/v5"
	lua "github.com/yuin/gopher-lua"

	"github.com/atlanticdynamic/litehost/internal/platform"
	"github.com/atlanticdynamic/litehost/internal/script"
	"github.com/atlanticdynamic/litehost/internal/window"
)

// Prober computes the process environment.
type Prober interface {
	PrepareProcess()
	Snapshot(args []string) platform.Environment
}

// WindowOwner creates and destroys the process window.
type WindowOwner interface {
	Create() (*window.Handle, error)
	Destroy(h *window.Handle) error
}

// Instance is one constructed script environment.
type Instance interface {
	ID() uuid.UUID
	Run(ctx context.Context, proto *lua.FunctionProto) (script.Outcome, error)
	PlaybackLogs(handler slog.Handler) error
	Close()
}

// ConstructFunc builds a fresh Instance.
type ConstructFunc func() (Instance, error)

// EnvironmentBuilder returns the constructor used for every loop iteration.
// It is called once, after the window exists.
type EnvironmentBuilder func(env platform.Environment, h *window.Handle) ConstructFunc

var (
	_ Prober      = (*platform.Prober)(nil)
	_ WindowOwner = (*window.Owner)(nil)
	_ Instance    = (*script.Environment)(nil)
)
