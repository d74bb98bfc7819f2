// Package platform computes the process-wide environment facts handed to the
// script runtime: platform name, display scale and executable path.
//
// Every probe degrades to a safe default instead of failing. Platform
// specific lookups are selected from the target GOOS, which can be overridden
// so each variant is testable on any host.
package platform

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"
)

const (
	// ReferenceDPI is the unscaled display density.
	ReferenceDPI = 96.0

	// DefaultScale is returned whenever the display scale cannot be determined.
	DefaultScale = 1.0

	// FallbackExecutable is reported when the running executable cannot be resolved.
	FallbackExecutable = "./lite-xl"

	// xrdbTimeout bounds the X resource query so startup never hangs on a wedged X server.
	xrdbTimeout = 2 * time.Second
)

// CommandRunner runs an external command and returns its standard output.
// A non-nil error covers both spawn failures and non-zero exit statuses.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// DPIQuery reports the system DPI from a first-class OS API.
type DPIQuery func() (uint32, error)

// Prober computes platform facts. The zero value is not usable; use New.
type Prober struct {
	goos       string
	runCommand CommandRunner
	systemDPI  DPIQuery
	dpiAware   func() error
	executable func() (string, error)
	logger     *slog.Logger
}

// New creates a Prober for the running platform.
func New(opts ...Option) *Prober {
	p := &Prober{
		goos:       runtime.GOOS,
		runCommand: execCommand,
		systemDPI:  systemDPI,
		dpiAware:   setProcessDPIAware,
		executable: os.Executable,
		logger:     slog.Default().WithGroup("platform.Prober"),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

func execCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// PrepareProcess applies process-level adjustments that must precede any
// window or display-mode query. On Windows the process is marked DPI aware so
// display metrics are reported in physical pixels. Failures are logged only.
func (p *Prober) PrepareProcess() {
	if p.goos != "windows" {
		return
	}
	if err := p.dpiAware(); err != nil {
		p.logger.Debug("Unable to mark process DPI aware", "error", err)
	}
}

// PlatformName returns the platform identifier exposed to scripts. The names
// match the ones the Lua application compares against.
func (p *Prober) PlatformName() string {
	switch p.goos {
	case "windows":
		return "Windows"
	case "linux":
		return "Linux"
	case "darwin":
		return "Mac OS X"
	case "freebsd":
		return "FreeBSD"
	case "openbsd":
		return "OpenBSD"
	case "netbsd":
		return "NetBSD"
	case "android":
		return "Android"
	case "ios":
		return "iOS"
	default:
		return "Unknown"
	}
}

// ComputeDisplayScale returns the display scale factor. It never fails: any
// lookup problem yields DefaultScale.
func (p *Prober) ComputeDisplayScale() float64 {
	switch p.goos {
	case "windows":
		return p.scaleFromSystemDPI()
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return p.scaleFromXrdb()
	default:
		return DefaultScale
	}
}

func (p *Prober) scaleFromSystemDPI() float64 {
	if p.systemDPI == nil {
		return DefaultScale
	}
	dpi, err := p.systemDPI()
	if err != nil || dpi == 0 {
		p.logger.Debug("System DPI unavailable", "error", err)
		return DefaultScale
	}
	return float64(dpi) / ReferenceDPI
}

func (p *Prober) scaleFromXrdb() float64 {
	if p.runCommand == nil {
		return DefaultScale
	}

	ctx, cancel := context.WithTimeout(context.Background(), xrdbTimeout)
	defer cancel()

	out, err := p.runCommand(ctx, "xrdb", "-query")
	if err != nil {
		p.logger.Debug("xrdb query failed", "error", err)
		return DefaultScale
	}

	dpi, ok := parseXrdbDPI(out)
	if !ok || dpi <= 0 {
		p.logger.Debug("No usable dpi resource from xrdb", "parsed", dpi)
		return DefaultScale
	}
	return float64(dpi) / ReferenceDPI
}

// ComputeExecutablePath returns the absolute path of the running executable,
// or FallbackExecutable when the platform cannot tell.
func (p *Prober) ComputeExecutablePath() string {
	if p.executable == nil {
		return FallbackExecutable
	}
	exe, err := p.executable()
	if err != nil || exe == "" {
		p.logger.Debug("Executable path unavailable", "error", err)
		return FallbackExecutable
	}
	abs, err := filepath.Abs(exe)
	if err != nil {
		return exe
	}
	return abs
}

// Snapshot computes every environment fact once.
func (p *Prober) Snapshot(args []string) Environment {
	env := NewEnvironment(
		p.PlatformName(),
		p.ComputeDisplayScale(),
		p.ComputeExecutablePath(),
		args,
	)
	p.logger.Debug("Process environment computed",
		"platform", env.Platform(),
		"scale", env.Scale(),
		"exefile", env.ExecutablePath(),
		"args", len(env.Args()),
	)
	return env
}
