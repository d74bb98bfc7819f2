package config

import (
	"fmt"

	"github.com/atlanticdynamic/litehost/internal/fancy"
)

// String returns a pretty-printed tree representation of the config
func (c *Config) String() string {
	return ConfigTree(c)
}

// ConfigTree converts a Config struct into a rendered tree string
func ConfigTree(cfg *Config) string {
	source := cfg.source
	if source == "" {
		source = "defaults"
	}

	t := fancy.Tree()
	t.Root(fancy.RootStyle.Render(fmt.Sprintf("Host Config (%s)", cfg.Version)))
	t.Child(fancy.KeyValue("source", source))

	loggingTree := fancy.BranchNode("Logging", "")
	loggingTree.Child(
		fancy.KeyValue("format", cfg.Logging.Format),
		fancy.KeyValue("level", cfg.Logging.Level),
		fancy.KeyValue("output", cfg.Logging.Output),
	)
	t.Child(loggingTree)

	windowTree := fancy.BranchNode("Window", "")
	windowTree.Child(
		fancy.KeyValue("width_fraction", cfg.Window.WidthFraction),
		fancy.KeyValue("height_fraction", cfg.Window.HeightFraction),
		fancy.KeyValue("title", fmt.Sprintf("%q", cfg.Window.Title)),
	)
	t.Child(windowTree)

	return t.String()
}
