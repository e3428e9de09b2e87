package records

import (
	"context"
	"flag"

	"github.com/theandychase/fmdapi/internal/cmd/base"
	"github.com/theandychase/fmdapi/pkg/fmdapi"
)

type GetCommand struct {
	*base.Command

	flagProfile string
	flagLayout  string
}

func (c *GetCommand) Synopsis() string {
	return "Fetch one record by id"
}

func (c *GetCommand) Help() string {
	return `Usage: fmdapi records get [options] <record-id>

  Fetches one record by its internal record id and prints it as JSON.

Options:

  -profile=<path>  Connection profile (default: $FMDAPI_PROFILE or fmdapi.hcl)
  -layout=<name>   Layout, overriding the profile default`
}

func (c *GetCommand) flags() *flag.FlagSet {
	f := flag.NewFlagSet("records get", flag.ContinueOnError)
	f.StringVar(&c.flagProfile, "profile", "", "connection profile path")
	f.StringVar(&c.flagLayout, "layout", "", "layout name")
	return f
}

func (c *GetCommand) Run(args []string) int {
	f := c.flags()
	if err := f.Parse(args); err != nil {
		return 1
	}
	if f.NArg() != 1 {
		c.UI.Error("exactly one record id argument is required")
		return 1
	}

	client, err := c.Client(base.ResolveProfile(c.flagProfile))
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	set, err := client.Get(context.Background(), fmdapi.GetParams{
		Layout:   c.flagLayout,
		RecordID: f.Arg(0),
	})
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	if err := c.Output(set); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	return 0
}
