package layouts

import (
	"context"
	"flag"

	"github.com/theandychase/fmdapi/internal/cmd/base"
	"github.com/theandychase/fmdapi/pkg/fmdapi"
)

type Command struct {
	*base.Command

	flagProfile string
}

func (c *Command) Synopsis() string {
	return "List layouts or show a layout's schema"
}

func (c *Command) Help() string {
	return `Usage: fmdapi layouts [options] [layout]

  Without an argument, lists every layout in the database. With a
  layout name, prints that layout's field and portal schema.

Options:

  -profile=<path>  Connection profile (default: $FMDAPI_PROFILE or fmdapi.hcl)`
}

func (c *Command) flags() *flag.FlagSet {
	f := flag.NewFlagSet("layouts", flag.ContinueOnError)
	f.StringVar(&c.flagProfile, "profile", "", "connection profile path")
	return f
}

func (c *Command) Run(args []string) int {
	f := c.flags()
	if err := f.Parse(args); err != nil {
		return 1
	}

	client, err := c.Client(base.ResolveProfile(c.flagProfile))
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	ctx := context.Background()

	var out any
	if f.NArg() > 0 {
		out, err = client.Metadata(ctx, fmdapi.MetadataParams{Layout: f.Arg(0)})
	} else {
		out, err = client.Layouts(ctx)
	}
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	if err := c.Output(out); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	return 0
}
