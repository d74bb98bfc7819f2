package render

import "log/slog"

type Option func(*GLSurface)

// WithLogHandler sets a custom log handler for the GLSurface instance.
func WithLogHandler(handler slog.Handler) Option {
	return func(s *GLSurface) {
		s.logger = slog.New(handler).WithGroup("render.GLSurface")
	}
}

// WithGLInit replaces the GL loader, for hosts without a GL driver.
func WithGLInit(initGL func() error) Option {
	return func(s *GLSurface) {
		if initGL != nil {
			s.initGL = initGL
		}
	}
}

// WithVersionQuery replaces the GL version lookup used for logging.
func WithVersionQuery(version func() string) Option {
	return func(s *GLSurface) {
		if version != nil {
			s.version = version
		}
	}
}
