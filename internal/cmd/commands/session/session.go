package session

import (
	"context"
	"flag"

	"github.com/mitchellh/cli"

	"github.com/theandychase/fmdapi/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage Data API sessions"
}

func (c *Command) Help() string {
	return `Usage: fmdapi session <subcommand> [options]

  This command groups subcommands for working with the server-side
  session of a username/password profile.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

type CloseCommand struct {
	*base.Command

	flagProfile string
}

func (c *CloseCommand) Synopsis() string {
	return "End the server-side session"
}

func (c *CloseCommand) Help() string {
	return `Usage: fmdapi session close [options]

  Ends the server-side Data API session. Only valid for profiles using
  username/password authentication; API-key profiles have no session.

Options:

  -profile=<path>  Connection profile (default: $FMDAPI_PROFILE or fmdapi.hcl)`
}

func (c *CloseCommand) flags() *flag.FlagSet {
	f := flag.NewFlagSet("session close", flag.ContinueOnError)
	f.StringVar(&c.flagProfile, "profile", "", "connection profile path")
	return f
}

func (c *CloseCommand) Run(args []string) int {
	if err := c.flags().Parse(args); err != nil {
		return 1
	}

	client, err := c.Client(base.ResolveProfile(c.flagProfile))
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	if err := client.Disconnect(context.Background()); err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	c.UI.Output("Session closed")
	return 0
}
