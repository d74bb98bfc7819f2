package driver

import (
	"io"
	"log/slog"

	"github.com/atlanticdynamic/litehost/internal/render"
	"github.com/atlanticdynamic/litehost/internal/script"
)

type Option func(*Driver)

// WithLogHandler sets a custom log handler for the Driver and the default
// components it creates.
func WithLogHandler(handler slog.Handler) Option {
	return func(d *Driver) {
		if handler == nil {
			return
		}
		d.handler = handler
		d.logger = slog.New(handler).WithGroup("driver.Driver")
	}
}

// WithArgs sets the process arguments injected as ARGS.
func WithArgs(args []string) Option {
	return func(d *Driver) {
		d.args = args
	}
}

// WithProber replaces the platform probe.
func WithProber(p Prober) Option {
	return func(d *Driver) {
		d.prober = p
	}
}

// WithWindowOwner replaces the window owner.
func WithWindowOwner(o WindowOwner) Option {
	return func(d *Driver) {
		d.owner = o
	}
}

// WithSurface replaces the render surface.
func WithSurface(s render.Surface) Option {
	return func(d *Driver) {
		d.surface = s
	}
}

// WithEnvironmentBuilder replaces how script environments are constructed.
func WithEnvironmentBuilder(b EnvironmentBuilder) Option {
	return func(d *Driver) {
		d.builder = b
	}
}

// WithPayload replaces the bootstrap payload source.
func WithPayload(source string) Option {
	return func(d *Driver) {
		d.payload = &source
	}
}

// WithStderr sets where bootstrap integrity failures are reported.
func WithStderr(w io.Writer) Option {
	return func(d *Driver) {
		if w != nil {
			d.stderr = w
		}
	}
}

// WithReportDir sets the directory receiving host-side error reports.
func WithReportDir(dir string) Option {
	return func(d *Driver) {
		d.reportDir = dir
	}
}

// WithFatalNotifier replaces the fatal error dialog used by the default
// environment builder and by host-side error reports.
func WithFatalNotifier(n script.FatalNotifier) Option {
	return func(d *Driver) {
		d.notify = n
	}
}
