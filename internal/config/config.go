// Package config loads the CLI connection profile from an HCL file and
// validates it before any client is constructed. A profile names one
// server, one database and one authentication shape:
//
//	server   = "https://fms.example.com"
//	database = "Sales"
//	layout   = "Contacts"
//	timeout  = "30s"
//
//	auth {
//	  username = "api"
//	  password = "secret"
//	  # or, for Otto:
//	  # api_key   = "dk_12345"
//	  # otto_port = 3030
//	}
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/theandychase/fmdapi/pkg/fmdapi"
)

// Config is the decoded connection profile.
type Config struct {
	Server   string `hcl:"server,optional"`
	Database string `hcl:"database,optional"`
	Layout   string `hcl:"layout,optional"`
	Timeout  string `hcl:"timeout,optional"`
	Auth     *Auth  `hcl:"auth,block"`
}

// Auth holds one of the two authentication shapes.
type Auth struct {
	APIKey   string `hcl:"api_key,optional"`
	OttoPort int    `hcl:"otto_port,optional"`
	Username string `hcl:"username,optional"`
	Password string `hcl:"password,optional"`
}

// Load reads and validates a profile file.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := hclsimple.DecodeFile(path, nil, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load profile %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate collects every problem with the profile into one
// (multierror) error so a broken profile is fixable in a single pass.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.Server == "" {
		result = multierror.Append(result, fmt.Errorf("server is required"))
	} else if !strings.HasPrefix(c.Server, "http") {
		result = multierror.Append(result, fmt.Errorf("server must begin with http"))
	}

	if c.Database == "" {
		result = multierror.Append(result, fmt.Errorf("database is required"))
	}

	if c.Timeout != "" {
		if _, err := time.ParseDuration(c.Timeout); err != nil {
			result = multierror.Append(result, fmt.Errorf("invalid timeout: %w", err))
		}
	}

	switch {
	case c.Auth == nil:
		result = multierror.Append(result, fmt.Errorf("an auth block is required"))
	case c.Auth.APIKey != "" && (c.Auth.Username != "" || c.Auth.Password != ""):
		result = multierror.Append(result, fmt.Errorf("auth: api_key and username/password are mutually exclusive"))
	case c.Auth.APIKey == "" && (c.Auth.Username == "" || c.Auth.Password == ""):
		result = multierror.Append(result, fmt.Errorf("auth: either api_key or both username and password are required"))
	case c.Auth.APIKey == "" && c.Auth.OttoPort != 0:
		result = multierror.Append(result, fmt.Errorf("auth: otto_port is only valid with api_key"))
	}

	return result.ErrorOrNil()
}

// NewClient builds a Data API client from the profile.
func (c *Config) NewClient(logger hclog.Logger) (*fmdapi.Client, error) {
	clientConfig := &fmdapi.Config{
		Server:   c.Server,
		Database: c.Database,
		Layout:   c.Layout,
		Logger:   logger,
	}
	if c.Timeout != "" {
		timeout, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout: %w", err)
		}
		clientConfig.Timeout = timeout
	}
	if c.Auth != nil {
		clientConfig.APIKey = c.Auth.APIKey
		clientConfig.OttoPort = c.Auth.OttoPort
		clientConfig.Username = c.Auth.Username
		clientConfig.Password = c.Auth.Password
	}
	return fmdapi.New(clientConfig)
}
