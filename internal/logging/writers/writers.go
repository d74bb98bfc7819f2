// Package writers resolves a log output specification into an io.Writer.
package writers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// WriterType represents the type of writer to create
type WriterType string

const (
	WriterTypeStdout WriterType = "stdout"
	WriterTypeStderr WriterType = "stderr"
	WriterTypeFile   WriterType = "file"
)

// nopCloser is returned for the process streams, which are never closed by the host.
var nopCloser = func() error { return nil }

// Open creates a writer from the output specification, along with a close
// function the caller must invoke at shutdown. Supported formats:
//   - "stderr" or "" - writes to os.Stderr
//   - "stdout" - writes to os.Stdout
//   - "file:///path/to/file" or a path - appends to the file, creating parent directories
func Open(output string) (io.Writer, func() error, error) {
	switch ParseWriterType(output) {
	case WriterTypeStderr:
		return os.Stderr, nopCloser, nil
	case WriterTypeStdout:
		return os.Stdout, nopCloser, nil
	}

	if err := Validate(output); err != nil {
		return nil, nil, err
	}

	f, err := openFile(strings.TrimPrefix(output, "file://"))
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func openFile(filePath string) (*os.File, error) {
	dir := filepath.Dir(filePath)
	if dir != "." && dir != string(filepath.Separator) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	return file, nil
}

// Validate reports whether output names a supported destination.
func Validate(output string) error {
	if strings.Contains(output, "://") && !strings.HasPrefix(output, "file://") {
		return fmt.Errorf("unsupported output format: %s", output)
	}
	if output == "file://" {
		return fmt.Errorf("empty file path in output: %s", output)
	}
	return nil
}

// ParseWriterType determines the writer type from an output string.
// The host logs to stderr by default so stdout stays free for the
// application's own error echo.
func ParseWriterType(output string) WriterType {
	switch strings.ToLower(strings.TrimSpace(output)) {
	case "", "stderr":
		return WriterTypeStderr
	case "stdout":
		return WriterTypeStdout
	default:
		return WriterTypeFile
	}
}
