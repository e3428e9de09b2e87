package records

import (
	"context"
	"encoding/json"
	"flag"

	"github.com/theandychase/fmdapi/internal/cmd/base"
	"github.com/theandychase/fmdapi/pkg/fmdapi"
)

type CreateCommand struct {
	*base.Command

	flagProfile string
	flagLayout  string
}

func (c *CreateCommand) Synopsis() string {
	return "Create a record from JSON field data"
}

func (c *CreateCommand) Help() string {
	return `Usage: fmdapi records create [options] <field-data-json>

  Creates a record from a JSON object of field values and prints the
  new record's identity, e.g.:

    fmdapi records create '{"Name": "Ada", "Email": "ada@example.com"}'

Options:

  -profile=<path>  Connection profile (default: $FMDAPI_PROFILE or fmdapi.hcl)
  -layout=<name>   Layout, overriding the profile default`
}

func (c *CreateCommand) flags() *flag.FlagSet {
	f := flag.NewFlagSet("records create", flag.ContinueOnError)
	f.StringVar(&c.flagProfile, "profile", "", "connection profile path")
	f.StringVar(&c.flagLayout, "layout", "", "layout name")
	return f
}

func (c *CreateCommand) Run(args []string) int {
	f := c.flags()
	if err := f.Parse(args); err != nil {
		return 1
	}
	if f.NArg() != 1 {
		c.UI.Error("exactly one field-data JSON argument is required")
		return 1
	}

	var fieldData map[string]any
	if err := json.Unmarshal([]byte(f.Arg(0)), &fieldData); err != nil {
		c.UI.Error("invalid field data: " + err.Error())
		return 1
	}

	client, err := c.Client(base.ResolveProfile(c.flagProfile))
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	res, err := client.Create(context.Background(), fmdapi.CreateParams{
		Layout:    c.flagLayout,
		FieldData: fieldData,
	})
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	if err := c.Output(res); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	return 0
}
