// Package fancy renders host state as styled terminal trees.
package fancy

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
)

var (
	ColorBlue     = lipgloss.Color("39")
	ColorGreen    = lipgloss.Color("82")
	ColorYellow   = lipgloss.Color("228")
	ColorCyan     = lipgloss.Color("45")
	ColorGray     = lipgloss.Color("250")
	ColorWhite    = lipgloss.Color("15")
	ColorDarkGray = lipgloss.Color("240")
)

var (
	RootStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	KeyStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Italic(true)

	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorDarkGray)
)

// Tree returns an empty tree with the shared enumerator styling.
func Tree() *tree.Tree {
	t := tree.New()
	t.EnumeratorStyle(BranchStyle)
	t.Enumerator(tree.RoundedEnumerator)
	return t
}

// BranchNode returns a subtree headed by a title and a dimmed annotation.
func BranchNode(title string, info string) *tree.Tree {
	header := HeaderStyle.Render(title)
	if info != "" {
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, " ", InfoStyle.Render(info))
	}
	t := Tree()
	t.Root(header)
	return t
}

// KeyValue renders a "key: value" leaf.
func KeyValue(key string, value any) string {
	return KeyStyle.Render(key+":") + " " + ValueStyle.Render(fmt.Sprint(value))
}

// TruncateString shortens s to maxLength characters, marking the cut with an ellipsis.
func TruncateString(s string, maxLength int) string {
	if maxLength < 4 || len(s) <= maxLength {
		return s
	}
	return s[:maxLength-3] + "..."
}
