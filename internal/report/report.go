// Package report writes host-side error reports for script failures that
// escape the bootstrap payload's own handler.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/atlanticdynamic/litehost/internal/logging"
)

// FileName is the report file written into the destination directory.
const FileName = "error.txt"

var ErrNoDestination = errors.New("report destination is empty")

// Replayer replays recorded log history into a handler.
type Replayer func(slog.Handler) error

// ErrorReport describes one fatal script error.
type ErrorReport struct {
	Message     string
	Traceback   string
	Destination string

	history Replayer
}

// New returns a report destined for the error file inside destination.
func New(message, traceback, destination string) *ErrorReport {
	return &ErrorReport{
		Message:     message,
		Traceback:   traceback,
		Destination: destination,
	}
}

// WithHistory attaches log history to be appended after the traceback.
func (r *ErrorReport) WithHistory(replay Replayer) *ErrorReport {
	r.history = replay
	return r
}

// Path returns the absolute path of the report file.
func (r *ErrorReport) Path() (string, error) {
	if strings.TrimSpace(r.Destination) == "" {
		return "", ErrNoDestination
	}
	dir, err := filepath.Abs(r.Destination)
	if err != nil {
		return "", fmt.Errorf("failed to resolve report destination: %w", err)
	}
	return filepath.Join(dir, FileName), nil
}

// Format renders the report body: an "Error: " line followed by the traceback.
func (r *ErrorReport) Format() string {
	var b strings.Builder
	b.WriteString("Error: " + r.Message + "\n")
	b.WriteString(r.Traceback + "\n")
	return b.String()
}

// Bytes renders the body followed by any log history.
func (r *ErrorReport) Bytes() ([]byte, error) {
	buf := bytes.NewBufferString(r.Format())
	if r.history == nil {
		return buf.Bytes(), nil
	}

	var logs bytes.Buffer
	if err := r.history(logging.SetupHandlerText("debug", &logs)); err != nil {
		return nil, fmt.Errorf("failed to render log history: %w", err)
	}
	if logs.Len() > 0 {
		buf.WriteString("\nLog history:\n")
		buf.Write(logs.Bytes())
	}
	return buf.Bytes(), nil
}

// Write stores the report synchronously and returns the file path.
func (r *ErrorReport) Write() (string, error) {
	path, err := r.Path()
	if err != nil {
		return "", err
	}
	data, err := r.Bytes()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write error report: %w", err)
	}
	return path, nil
}
