package platform

import (
	"fmt"
	"slices"
	"strings"

	"github.com/atlanticdynamic/litehost/internal/fancy"
)

// Environment is the immutable snapshot of process facts computed once at
// startup and injected into every script environment instance.
type Environment struct {
	platform string
	scale    float64
	exePath  string
	args     []string
}

// NewEnvironment builds an Environment. A non-positive scale is replaced with
// DefaultScale and args are copied.
func NewEnvironment(platform string, scale float64, exePath string, args []string) Environment {
	if scale <= 0 {
		scale = DefaultScale
	}
	return Environment{
		platform: platform,
		scale:    scale,
		exePath:  exePath,
		args:     slices.Clone(args),
	}
}

// Platform returns the platform name, e.g. "Linux".
func (e Environment) Platform() string { return e.platform }

// Scale returns the display scale factor, always > 0.
func (e Environment) Scale() float64 { return e.scale }

// ExecutablePath returns the absolute path of the running executable.
func (e Environment) ExecutablePath() string { return e.exePath }

// Args returns a copy of the process arguments, argv[0] first.
func (e Environment) Args() []string { return slices.Clone(e.args) }

// String renders the environment as a tree for debug output.
func (e Environment) String() string {
	t := fancy.Tree()
	t.Root(fancy.RootStyle.Render("Process Environment"))
	t.Child(
		fancy.KeyValue("platform", e.platform),
		fancy.KeyValue("scale", fmt.Sprintf("%.2f", e.scale)),
		fancy.KeyValue("exefile", e.exePath),
	)

	argNode := fancy.BranchNode("args", fmt.Sprintf("(%d)", len(e.args)))
	for i, a := range e.args {
		argNode.Child(fancy.KeyValue(fmt.Sprintf("[%d]", i+1), fancy.TruncateString(strings.TrimSpace(a), 60)))
	}
	t.Child(argNode)

	return t.String()
}
