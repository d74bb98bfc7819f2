// Command lite-xl is the native host of the Lua editor runtime. It probes the
// platform, opens the window and runs the bootstrap payload until the
// application exits without requesting a restart.
package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"
)

// Version is set during build using ldflags
var Version = "dev"

func init() {
	// The display subsystem and the GL context are bound to the main thread.
	runtime.LockOSThread()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Getenv, os.Stderr)
	stop()
	os.Exit(code)
}
