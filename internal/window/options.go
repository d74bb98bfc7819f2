package window

import (
	"image"
	"log/slog"
)

type Option func(*Owner)

// WithLogHandler sets a custom log handler for the Owner instance.
func WithLogHandler(handler slog.Handler) Option {
	return func(o *Owner) {
		o.logger = slog.New(handler).WithGroup("window.Owner")
	}
}

// WithFractions sets the share of the display mode covered on each axis.
// Values outside (0, 1] are ignored.
func WithFractions(width, height float64) Option {
	return func(o *Owner) {
		if width > 0 && width <= 1 {
			o.widthFraction = width
		}
		if height > 0 && height <= 1 {
			o.heightFraction = height
		}
	}
}

// WithTitle sets the initial window title.
func WithTitle(title string) Option {
	return func(o *Owner) {
		o.title = title
	}
}

// WithGOOS overrides the platform used to decide whether to set the icon.
func WithGOOS(goos string) Option {
	return func(o *Owner) {
		o.goos = goos
	}
}

// WithIcon replaces the icon source. A nil source disables the icon.
func WithIcon(icon func() (image.Image, error)) Option {
	return func(o *Owner) {
		o.icon = icon
	}
}
