package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/theandychase/fmdapi/internal/cmd/base"
	"github.com/theandychase/fmdapi/internal/cmd/commands/find"
	"github.com/theandychase/fmdapi/internal/cmd/commands/layouts"
	"github.com/theandychase/fmdapi/internal/cmd/commands/records"
	"github.com/theandychase/fmdapi/internal/cmd/commands/session"
	versioncmd "github.com/theandychase/fmdapi/internal/cmd/commands/version"
)

// Commands is the mapping of CLI command names to factories.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	baseCommand := &base.Command{
		UI:  ui,
		Log: log,
	}

	Commands = map[string]cli.CommandFactory{
		"records": func() (cli.Command, error) {
			return &records.Command{Command: baseCommand}, nil
		},
		"records list": func() (cli.Command, error) {
			return &records.ListCommand{Command: baseCommand}, nil
		},
		"records get": func() (cli.Command, error) {
			return &records.GetCommand{Command: baseCommand}, nil
		},
		"records create": func() (cli.Command, error) {
			return &records.CreateCommand{Command: baseCommand}, nil
		},
		"records delete": func() (cli.Command, error) {
			return &records.DeleteCommand{Command: baseCommand}, nil
		},
		"find": func() (cli.Command, error) {
			return &find.Command{Command: baseCommand}, nil
		},
		"layouts": func() (cli.Command, error) {
			return &layouts.Command{Command: baseCommand}, nil
		},
		"session": func() (cli.Command, error) {
			return &session.Command{Command: baseCommand}, nil
		},
		"session close": func() (cli.Command, error) {
			return &session.CloseCommand{Command: baseCommand}, nil
		},
		"version": func() (cli.Command, error) {
			return &versioncmd.Command{Command: baseCommand}, nil
		},
	}
}
