package find

import (
	"context"
	"encoding/json"
	"flag"

	"github.com/theandychase/fmdapi/internal/cmd/base"
	"github.com/theandychase/fmdapi/pkg/fmdapi"
)

type Command struct {
	*base.Command

	flagProfile     string
	flagLayout      string
	flagLimit       int
	flagIgnoreEmpty bool
}

func (c *Command) Synopsis() string {
	return "Search a layout"
}

func (c *Command) Help() string {
	return `Usage: fmdapi find [options] <query-json>

  Searches a layout. The query is a JSON object of field match
  expressions, or a JSON array of such objects, e.g.:

    fmdapi find '{"Email": "==ada@example.com"}'
    fmdapi find '[{"Name": "Ada"}, {"Name": "Grace", "omit": "true"}]'

Options:

  -profile=<path>  Connection profile (default: $FMDAPI_PROFILE or fmdapi.hcl)
  -layout=<name>   Layout, overriding the profile default
  -limit=<n>       Maximum records to return
  -ignore-empty    Print an empty set instead of failing when nothing matches`
}

func (c *Command) flags() *flag.FlagSet {
	f := flag.NewFlagSet("find", flag.ContinueOnError)
	f.StringVar(&c.flagProfile, "profile", "", "connection profile path")
	f.StringVar(&c.flagLayout, "layout", "", "layout name")
	f.IntVar(&c.flagLimit, "limit", 0, "maximum records to return")
	f.BoolVar(&c.flagIgnoreEmpty, "ignore-empty", false, "treat no matches as an empty set")
	return f
}

func (c *Command) Run(args []string) int {
	f := c.flags()
	if err := f.Parse(args); err != nil {
		return 1
	}
	if f.NArg() != 1 {
		c.UI.Error("exactly one query JSON argument is required")
		return 1
	}

	var query any
	if err := json.Unmarshal([]byte(f.Arg(0)), &query); err != nil {
		c.UI.Error("invalid query: " + err.Error())
		return 1
	}

	client, err := c.Client(base.ResolveProfile(c.flagProfile))
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	set, err := client.Find(context.Background(), fmdapi.FindParams{
		Layout:            c.flagLayout,
		Query:             query,
		Limit:             c.flagLimit,
		IgnoreEmptyResult: c.flagIgnoreEmpty,
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
