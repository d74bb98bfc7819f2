// Package payload holds the fixed bootstrap script that locates the
// application's entry point, runs it, and installs its top-level error
// handler. The script is data: a versioned template whose platform-specific
// pieces are substituted before a single up-front compile.
package payload

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"text/template"

	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

// Version identifies the bootstrap control structure. Bump it whenever the
// recovery or restart contract of the template changes.
const Version = "1"

const (
	// ChunkName is the name compiled chunks report in tracebacks.
	ChunkName = "bootstrap"

	// InternalErrorMessage is written to stderr when the payload cannot be compiled.
	InternalErrorMessage = "internal error when starting the application"

	AppName    = "lite-xl"
	FatalTitle = "Lite XL internal error"
	ErrorFile  = "error.txt"
)

var ErrCompile = errors.New("bootstrap payload failed to compile")

//go:embed bootstrap.lua.tmpl
var bootstrapTemplate string

var tmpl = template.Must(template.New(ChunkName).Parse(bootstrapTemplate))

// Params are the substitutions applied to the bootstrap template. PathSep and
// NonPathSep are Lua pattern fragments as they appear inside a double-quoted
// Lua string literal.
type Params struct {
	HomeVar    string
	PathSep    string
	NonPathSep string
	AppName    string
	FatalTitle string
	ErrorFile  string
}

// ParamsFor returns the template parameters for a GOOS value.
func ParamsFor(goos string) Params {
	p := Params{
		HomeVar:    "HOME",
		PathSep:    "/",
		NonPathSep: "[^/]+",
		AppName:    AppName,
		FatalTitle: FatalTitle,
		ErrorFile:  ErrorFile,
	}
	if goos == "windows" {
		p.HomeVar = "USERPROFILE"
		p.PathSep = `\\`
		p.NonPathSep = `[^\\]+`
	}
	return p
}

// Validate reports missing parameters.
func (p Params) Validate() error {
	var errs []error
	for name, v := range map[string]string{
		"home variable":      p.HomeVar,
		"path separator":     p.PathSep,
		"non-path separator": p.NonPathSep,
		"application name":   p.AppName,
		"error file":         p.ErrorFile,
	} {
		if strings.TrimSpace(v) == "" {
			errs = append(errs, fmt.Errorf("%s is empty", name))
		}
	}
	return errors.Join(errs...)
}

// Render expands the bootstrap template.
func Render(p Params) (string, error) {
	if err := p.Validate(); err != nil {
		return "", fmt.Errorf("invalid payload params: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, p); err != nil {
		return "", fmt.Errorf("failed to render payload: %w", err)
	}
	return buf.String(), nil
}

// Source renders the bootstrap payload for a GOOS value.
func Source(goos string) (string, error) {
	return Render(ParamsFor(goos))
}

// Compile parses and compiles Lua source into a function prototype that can
// be instantiated in any number of states. Every failure wraps ErrCompile.
func Compile(source, name string) (*lua.FunctionProto, error) {
	chunk, err := parse.Parse(strings.NewReader(source), name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}
	proto, err := lua.Compile(chunk, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}
	return proto, nil
}
