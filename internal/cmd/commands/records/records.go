package records

import (
	"github.com/mitchellh/cli"

	"github.com/theandychase/fmdapi/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Work with records on a layout"
}

func (c *Command) Help() string {
	return `Usage: fmdapi records <subcommand> [options] [args]

  This command groups subcommands for creating, reading, updating and
  deleting records.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
