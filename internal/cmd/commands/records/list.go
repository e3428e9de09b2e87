package records

import (
	"context"
	"flag"

	"github.com/theandychase/fmdapi/internal/cmd/base"
	"github.com/theandychase/fmdapi/pkg/fmdapi"
)

type ListCommand struct {
	*base.Command

	flagProfile string
	flagLayout  string
	flagLimit   int
	flagOffset  int
	flagSort    string
}

func (c *ListCommand) Synopsis() string {
	return "List records on a layout"
}

func (c *ListCommand) Help() string {
	return `Usage: fmdapi records list [options]

  Lists a page of records and prints them as JSON.

Options:

  -profile=<path>  Connection profile (default: $FMDAPI_PROFILE or fmdapi.hcl)
  -layout=<name>   Layout, overriding the profile default
  -limit=<n>       Maximum records to return
  -offset=<n>      Records to skip
  -sort=<field>    Field to sort by`
}

func (c *ListCommand) flags() *flag.FlagSet {
	f := flag.NewFlagSet("records list", flag.ContinueOnError)
	f.StringVar(&c.flagProfile, "profile", "", "connection profile path")
	f.StringVar(&c.flagLayout, "layout", "", "layout name")
	f.IntVar(&c.flagLimit, "limit", 0, "maximum records to return")
	f.IntVar(&c.flagOffset, "offset", 0, "records to skip")
	f.StringVar(&c.flagSort, "sort", "", "field to sort by")
	return f
}

func (c *ListCommand) Run(args []string) int {
	if err := c.flags().Parse(args); err != nil {
		return 1
	}

	client, err := c.Client(base.ResolveProfile(c.flagProfile))
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	params := fmdapi.ListParams{
		Layout: c.flagLayout,
		Limit:  c.flagLimit,
		Offset: c.flagOffset,
	}
	if c.flagSort != "" {
		params.Sort = c.flagSort
	}

	set, err := client.List(context.Background(), params)
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
