package script

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/sqweek/dialog"
	lua "github.com/yuin/gopher-lua"

	"github.com/atlanticdynamic/litehost/internal/window"
)

// SystemModule is the global name of the host system library.
const SystemModule = "system"

// FatalNotifier presents a fatal error to the user.
type FatalNotifier func(title, message string)

// DialogNotifier shows a native error message box. When no dialog backend is
// usable the message is only logged.
func DialogNotifier(logger *slog.Logger) FatalNotifier {
	return func(title, message string) {
		logger.Error("Fatal error", "title", title, "message", message)
		defer func() {
			if r := recover(); r != nil {
				logger.Warn("Fatal error dialog unavailable", "error", fmt.Sprint(r))
			}
		}()
		dialog.Message("%s", message).Title(title).Error()
	}
}

// SystemLibrary provides the host primitives the bootstrap payload relies on.
// It holds a non-owning reference to the process window.
type SystemLibrary struct {
	window  *window.Handle
	scale   float64
	notify  FatalNotifier
	start   time.Time
	absPath func(string) (string, error)
	logger  *slog.Logger
}

// SystemOption configures a SystemLibrary.
type SystemOption func(*SystemLibrary)

// WithSystemLogHandler sets a custom log handler for the SystemLibrary.
func WithSystemLogHandler(handler slog.Handler) SystemOption {
	return func(s *SystemLibrary) {
		s.logger = slog.New(handler).WithGroup("script.SystemLibrary")
	}
}

// WithFatalNotifier replaces the fatal error dialog.
func WithFatalNotifier(notify FatalNotifier) SystemOption {
	return func(s *SystemLibrary) {
		if notify != nil {
			s.notify = notify
		}
	}
}

// WithWindow gives the library a non-owning reference to the process window.
func WithWindow(h *window.Handle) SystemOption {
	return func(s *SystemLibrary) {
		s.window = h
	}
}

// WithScale sets the value reported by system.get_scale.
func WithScale(scale float64) SystemOption {
	return func(s *SystemLibrary) {
		if scale > 0 {
			s.scale = scale
		}
	}
}

// WithAbsPathFunc replaces the resolver behind system.absolute_path.
func WithAbsPathFunc(abs func(string) (string, error)) SystemOption {
	return func(s *SystemLibrary) {
		if abs != nil {
			s.absPath = abs
		}
	}
}

// NewSystemLibrary returns the system library.
func NewSystemLibrary(opts ...SystemOption) *SystemLibrary {
	s := &SystemLibrary{
		scale:   1.0,
		start:   time.Now(),
		absPath: filepath.Abs,
		logger:  slog.Default().WithGroup("script.SystemLibrary"),
	}

	for _, opt := range opts {
		opt(s)
	}
	if s.notify == nil {
		s.notify = DialogNotifier(s.logger)
	}

	return s
}

// Load registers the system table in L. It satisfies Library.
func (s *SystemLibrary) Load(L *lua.LState) error {
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"show_fatal_error": s.showFatalError,
		"absolute_path":    s.absolutePath,
		"get_time":         s.getTime,
		"show_window":      s.showWindow,
		"set_window_title": s.setWindowTitle,
		"get_scale":        s.getScale,
	})
	L.SetGlobal(SystemModule, mod)
	return nil
}

func (s *SystemLibrary) showFatalError(L *lua.LState) int {
	title := L.CheckString(1)
	message := L.CheckString(2)
	s.notify(title, message)
	return 0
}

func (s *SystemLibrary) absolutePath(L *lua.LState) int {
	abs, err := s.absPath(L.CheckString(1))
	if err != nil {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(abs))
	return 1
}

func (s *SystemLibrary) getTime(L *lua.LState) int {
	L.Push(lua.LNumber(time.Since(s.start).Seconds()))
	return 1
}

func (s *SystemLibrary) showWindow(L *lua.LState) int {
	s.window.Show()
	return 0
}

func (s *SystemLibrary) setWindowTitle(L *lua.LState) int {
	s.window.SetTitle(L.CheckString(1))
	return 0
}

func (s *SystemLibrary) getScale(L *lua.LState) int {
	L.Push(lua.LNumber(s.scale))
	return 1
}
