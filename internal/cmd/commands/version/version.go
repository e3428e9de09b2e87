package version

import (
	"github.com/theandychase/fmdapi/internal/cmd/base"
	"github.com/theandychase/fmdapi/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version"
}

func (c *Command) Help() string {
	return `Usage: fmdapi version`
}

func (c *Command) Run(args []string) int {
	c.UI.Output("fmdapi " + version.Version)
	return 0
}
