package window

import (
	"image"
)

// Hint names a best-effort window-manager hint applied before window creation.
type Hint string

const (
	// HintBypassCompositor controls _NET_WM_BYPASS_COMPOSITOR on X11. The host disables it.
	HintBypassCompositor Hint = "bypass_compositor"

	// HintMouseFocusClickThrough lets the click that focuses a window also reach it.
	HintMouseFocusClickThrough Hint = "mouse_focus_clickthrough"
)

// VideoMode is the current mode of a display, in screen coordinates.
type VideoMode struct {
	Width  int
	Height int
}

// CreateSpec describes the window the backend must create.
type CreateSpec struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
	HighDPI   bool
	Hidden    bool
}

// NativeWindow is a window created by a Backend.
type NativeWindow interface {
	Show()
	SetTitle(title string)
	SetIcon(images []image.Image)
	Size() (width, height int)
	Destroy()
}

// Backend is the native display subsystem. Implementations must be used from
// the main OS thread.
type Backend interface {
	// Init initializes the display subsystem.
	Init() error

	// SetHint applies a window-manager hint and reports whether the backend supports it.
	SetHint(hint Hint, enabled bool) bool

	// PrimaryVideoMode returns the current mode of the primary display.
	PrimaryVideoMode() (VideoMode, error)

	// CreateWindow creates a native window at a system-chosen position.
	CreateWindow(spec CreateSpec) (NativeWindow, error)

	// Terminate releases the display subsystem.
	Terminate()
}
