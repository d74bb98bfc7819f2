package script

import (
	"errors"
	"strings"
)

var (
	ErrRuntime    = errors.New("script runtime error")
	ErrClosed     = errors.New("script environment closed")
	ErrNilPayload = errors.New("nil payload")
	ErrLibrary    = errors.New("failed to load host library")
)

// RuntimeError is an error that escaped the payload's own handler.
type RuntimeError struct {
	Message   string
	Traceback string
}

func (e *RuntimeError) Error() string {
	return ErrRuntime.Error() + ": " + e.Message
}

func (e *RuntimeError) Unwrap() error {
	return ErrRuntime
}

// trimTraceback drops the leading "stack traceback:" header gopher-lua adds
// so callers can print the frames under their own heading.
func trimTraceback(trace string) string {
	trace = strings.TrimSpace(trace)
	return strings.TrimSpace(strings.TrimPrefix(trace, "stack traceback:"))
}
