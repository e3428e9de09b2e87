package records

import (
	"context"
	"flag"

	"github.com/theandychase/fmdapi/internal/cmd/base"
	"github.com/theandychase/fmdapi/pkg/fmdapi"
)

type DeleteCommand struct {
	*base.Command

	flagProfile string
	flagLayout  string
}

func (c *DeleteCommand) Synopsis() string {
	return "Delete a record by id"
}

func (c *DeleteCommand) Help() string {
	return `Usage: fmdapi records delete [options] <record-id>

  Deletes one record by its internal record id.

Options:

  -profile=<path>  Connection profile (default: $FMDAPI_PROFILE or fmdapi.hcl)
  -layout=<name>   Layout, overriding the profile default`
}

func (c *DeleteCommand) flags() *flag.FlagSet {
	f := flag.NewFlagSet("records delete", flag.ContinueOnError)
	f.StringVar(&c.flagProfile, "profile", "", "connection profile path")
	f.StringVar(&c.flagLayout, "layout", "", "layout name")
	return f
}

func (c *DeleteCommand) Run(args []string) int {
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

	if err := client.Delete(context.Background(), fmdapi.DeleteParams{
		Layout:   c.flagLayout,
		RecordID: f.Arg(0),
	}); err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	c.UI.Output("Deleted record " + f.Arg(0))
	return 0
}
