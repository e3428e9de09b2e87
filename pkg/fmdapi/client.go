package fmdapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"
)

// Client talks to one database on one FileMaker Server. It is safe for
// concurrent use; the only shared mutable state is the cached session
// token inside the token manager.
type Client struct {
	config     *Config
	baseURL    string
	httpClient *http.Client
	logger     hclog.Logger
	tokens     *tokenManager
}

// New validates the configuration and creates a Client. No network I/O
// happens until the first operation; under credential authentication
// the session is created lazily on first use.
func New(config *Config) (*Client, error) {
	if config == nil {
		return nil, fmt.Errorf("config is required")
	}

	// Copy so later caller mutations can't reach into the client.
	cfg := *config

	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	baseURL, err := cfg.baseURL()
	if err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = cfg.NewHTTPClient()
	}

	logger := cfg.Logger.Named("fmdapi")

	return &Client{
		config:     &cfg,
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
		tokens:     newTokenManager(&cfg, baseURL, httpClient, logger),
	}, nil
}

// resolveLayout applies the default layout from the config. Every
// operation resolves a concrete layout before building a request.
func (c *Client) resolveLayout(layout string) (string, error) {
	if layout != "" {
		return layout, nil
	}
	if c.config.Layout != "" {
		return c.config.Layout, nil
	}
	return "", ErrNoLayout
}
