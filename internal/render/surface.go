// Package render binds the process window's drawing surface before the first
// script environment runs.
package render

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/atlanticdynamic/litehost/internal/window"
)

var (
	ErrAlreadyBound = errors.New("surface already bound")
	ErrNilHandle    = errors.New("nil window handle")
	ErrNoContext    = errors.New("window has no GL context")
)

// Surface is bound to the window exactly once.
type Surface interface {
	Bind(h *window.Handle) error
	Bound() bool
}

// ContextProvider is implemented by native windows that own a GL context.
type ContextProvider interface {
	MakeContextCurrent()
}

var _ Surface = (*GLSurface)(nil)

// GLSurface makes the window's GL context current and loads the GL entry points.
type GLSurface struct {
	initGL  func() error
	version func() string
	logger  *slog.Logger

	bound bool
}

// NewGLSurface returns an unbound GL surface.
func NewGLSurface(opts ...Option) *GLSurface {
	s := &GLSurface{
		initGL:  gl.Init,
		version: glVersion,
		logger:  slog.Default().WithGroup("render.GLSurface"),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func glVersion() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// Bind attaches the surface to the window. A second call fails with
// ErrAlreadyBound.
func (s *GLSurface) Bind(h *window.Handle) error {
	if s.bound {
		return ErrAlreadyBound
	}
	if h == nil || h.Native() == nil {
		return ErrNilHandle
	}

	ctx, ok := h.Native().(ContextProvider)
	if !ok {
		return ErrNoContext
	}
	ctx.MakeContextCurrent()

	if err := s.initGL(); err != nil {
		return fmt.Errorf("failed to initialize GL: %w", err)
	}
	s.bound = true

	s.logger.Debug("Surface bound", "gl_version", s.version())
	return nil
}

// Bound reports whether Bind has succeeded.
func (s *GLSurface) Bound() bool {
	return s.bound
}
