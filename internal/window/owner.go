// Package window owns the single native window of the process. The window is
// created once before the first script environment and destroyed once after
// the last one; script environments only ever hold a non-owning *Handle.
package window

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math"
	"runtime"
)

// DefaultFraction is the share of the display mode the window covers on each axis.
const DefaultFraction = 0.8

var (
	ErrAlreadyCreated = errors.New("window already created")
	ErrNilHandle      = errors.New("nil window handle")
	ErrInvalidMode    = errors.New("invalid display mode")
)

// Owner creates and destroys the process window.
type Owner struct {
	backend        Backend
	widthFraction  float64
	heightFraction float64
	title          string
	goos           string
	icon           func() (image.Image, error)
	logger         *slog.Logger

	created bool
}

// NewOwner returns an Owner that creates windows through backend.
func NewOwner(backend Backend, opts ...Option) *Owner {
	o := &Owner{
		backend:        backend,
		widthFraction:  DefaultFraction,
		heightFraction: DefaultFraction,
		goos:           runtime.GOOS,
		icon:           DefaultIcon,
		logger:         slog.Default().WithGroup("window.Owner"),
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// ScaledSize returns the window size for a display mode, truncating toward
// zero the way the integer window size is derived from the scaled mode.
func ScaledSize(mode VideoMode, widthFraction, heightFraction float64) (int, int) {
	return int(math.Trunc(float64(mode.Width) * widthFraction)),
		int(math.Trunc(float64(mode.Height) * heightFraction))
}

// Create initializes the backend and creates the hidden, resizable,
// high-DPI aware window sized to a fraction of the primary display mode.
// It may only succeed once per Owner.
func (o *Owner) Create() (*Handle, error) {
	if o.created {
		return nil, ErrAlreadyCreated
	}

	if err := o.backend.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize display subsystem: %w", err)
	}

	o.applyHints()

	mode, err := o.backend.PrimaryVideoMode()
	if err != nil {
		o.backend.Terminate()
		return nil, fmt.Errorf("failed to query display mode: %w", err)
	}
	if mode.Width <= 0 || mode.Height <= 0 {
		o.backend.Terminate()
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidMode, mode.Width, mode.Height)
	}

	width, height := ScaledSize(mode, o.widthFraction, o.heightFraction)
	native, err := o.backend.CreateWindow(CreateSpec{
		Width:     width,
		Height:    height,
		Title:     o.title,
		Resizable: true,
		HighDPI:   true,
		Hidden:    true,
	})
	if err != nil {
		o.backend.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	o.created = true

	o.applyIcon(native)

	o.logger.Debug("Window created",
		"display", fmt.Sprintf("%dx%d", mode.Width, mode.Height),
		"window", fmt.Sprintf("%dx%d", width, height),
	)
	return &Handle{native: native, width: width, height: height}, nil
}

func (o *Owner) applyHints() {
	for _, h := range []struct {
		hint    Hint
		enabled bool
	}{
		{HintBypassCompositor, false},
		{HintMouseFocusClickThrough, true},
	} {
		if !o.backend.SetHint(h.hint, h.enabled) {
			o.logger.Debug("Window hint not supported by backend", "hint", h.hint)
		}
	}
}

func (o *Owner) applyIcon(native NativeWindow) {
	if !iconSupported(o.goos) || o.icon == nil {
		return
	}
	img, err := o.icon()
	if err != nil {
		o.logger.Warn("Skipping window icon", "error", err)
		return
	}
	native.SetIcon([]image.Image{img})
}

// Destroy releases the native window and the display subsystem. Calling it
// again for the same handle is a no-op.
func (o *Owner) Destroy(h *Handle) error {
	if h == nil {
		return ErrNilHandle
	}
	if !h.release() {
		o.logger.Warn("Window already destroyed")
		return nil
	}
	o.backend.Terminate()
	o.logger.Debug("Window destroyed")
	return nil
}
