package script

import "log/slog"

type Option func(*Factory)

// WithLogHandler sets a custom log handler for the Factory and the
// environments it constructs.
func WithLogHandler(handler slog.Handler) Option {
	return func(f *Factory) {
		if handler == nil {
			return
		}
		f.handler = handler
		f.logger = slog.New(handler).WithGroup("script.Factory")
	}
}

// WithLibraries appends host library loaders run by every Construct call.
func WithLibraries(libs ...Library) Option {
	return func(f *Factory) {
		for _, lib := range libs {
			if lib != nil {
				f.libraries = append(f.libraries, lib)
			}
		}
	}
}
