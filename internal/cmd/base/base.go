// Package base carries the plumbing shared by every CLI command: the
// terminal UI, the logger and connection-profile loading.
package base

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/theandychase/fmdapi/internal/config"
	"github.com/theandychase/fmdapi/pkg/fmdapi"
)

// DefaultProfile is used when neither -profile nor FMDAPI_PROFILE names
// a profile file.
const DefaultProfile = "fmdapi.hcl"

// Command is embedded by every CLI command.
type Command struct {
	UI  cli.Ui
	Log hclog.Logger
}

// ResolveProfile picks the profile path: the flag value, then the
// FMDAPI_PROFILE environment variable, then DefaultProfile.
func ResolveProfile(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("FMDAPI_PROFILE"); env != "" {
		return env
	}
	return DefaultProfile
}

// Output prints v to the UI as indented JSON.
func (c *Command) Output(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	c.UI.Output(string(out))
	return nil
}

// Client loads the profile at path and builds a Data API client from it.
func (c *Command) Client(path string) (*fmdapi.Client, error) {
	profile, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	client, err := profile.NewClient(c.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to build client: %w", err)
	}
	return client, nil
}
