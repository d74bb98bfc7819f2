package platform

import (
	"log/slog"
)

type Option func(*Prober)

// WithLogger sets a custom logger for the Prober instance.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Prober) {
		p.logger = logger
	}
}

// WithLogHandler sets a custom log handler for the Prober instance.
func WithLogHandler(handler slog.Handler) Option {
	return func(p *Prober) {
		p.logger = slog.New(handler).WithGroup("platform.Prober")
	}
}

// WithGOOS overrides the target platform used to select probe variants.
func WithGOOS(goos string) Option {
	return func(p *Prober) {
		p.goos = goos
	}
}

// WithCommandRunner replaces the subprocess runner used by the xrdb probe.
func WithCommandRunner(runner CommandRunner) Option {
	return func(p *Prober) {
		p.runCommand = runner
	}
}

// WithDPIQuery replaces the OS DPI lookup used on Windows.
func WithDPIQuery(query DPIQuery) Option {
	return func(p *Prober) {
		p.systemDPI = query
	}
}

// WithDPIAwareFunc replaces the call that marks the process DPI aware.
func WithDPIAwareFunc(fn func() error) Option {
	return func(p *Prober) {
		p.dpiAware = fn
	}
}

// WithExecutableFunc replaces the executable path lookup.
func WithExecutableFunc(fn func() (string, error)) Option {
	return func(p *Prober) {
		p.executable = fn
	}
}
