package fmdapi

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
)

// DefaultOttoPort is the port the Otto Data API proxy listens on when
// none is configured.
const DefaultOttoPort = 3030

// Config holds connection and authentication settings for a Client.
// Exactly one authentication shape must be set: APIKey (Otto proxy) or
// Username+Password (FileMaker Server sessions). The Client copies the
// Config at construction and never mutates it afterward.
type Config struct {
	// Server is the FileMaker Server base URL, e.g. "https://fms.example.com".
	Server string

	// Database is the database name, without the ".fmp12" extension.
	Database string

	// APIKey is an Otto Data API key. Requests are routed through the
	// Otto proxy on OttoPort. Mutually exclusive with Username/Password.
	APIKey string

	// OttoPort is the Otto proxy port used with APIKey.
	// Default: 3030
	OttoPort int

	// Username and Password authenticate via the Data API sessions
	// endpoint. Mutually exclusive with APIKey.
	Username string
	Password string

	// Layout is the default layout used by operations that don't name
	// one explicitly. Optional.
	Layout string

	// Timeout for API requests.
	// Default: 30 seconds
	Timeout time.Duration

	// TLSVerify controls TLS certificate verification. Set to false
	// only for development with self-signed certificates.
	TLSVerify *bool

	// HTTPClient overrides the client built from Timeout/TLSVerify.
	// Optional.
	HTTPClient *http.Client

	// Logger for debug output. Default: hclog.NewNullLogger()
	Logger hclog.Logger
}

// Validate checks that the configuration is complete and coherent.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Server, validation.Required, validation.By(validateServerURL)),
		validation.Field(&c.Database, validation.Required),
		validation.Field(&c.OttoPort, validation.Min(0)),
	); err != nil {
		return err
	}

	hasKey := c.APIKey != ""
	hasCreds := c.Username != "" || c.Password != ""
	switch {
	case hasKey && hasCreds:
		return fmt.Errorf("api key and username/password are mutually exclusive")
	case !hasKey && (c.Username == "" || c.Password == ""):
		return fmt.Errorf("either an api key or both username and password are required")
	case !hasKey && c.OttoPort != 0:
		return fmt.Errorf("otto port is only valid with api key authentication")
	}

	return nil
}

func validateServerURL(value interface{}) error {
	s, _ := value.(string)
	if !strings.HasPrefix(s, "http") {
		return fmt.Errorf("must begin with http")
	}
	if _, err := url.Parse(s); err != nil {
		return fmt.Errorf("must be a valid URL: %w", err)
	}
	return nil
}

// baseURL builds the database-scoped Data API base URL. API-key
// authentication rewrites the host port to the Otto proxy port.
func (c *Config) baseURL() (string, error) {
	u, err := url.Parse(c.Server)
	if err != nil {
		return "", fmt.Errorf("invalid server URL: %w", err)
	}
	if c.APIKey != "" {
		port := c.OttoPort
		if port == 0 {
			port = DefaultOttoPort
		}
		u.Host = net.JoinHostPort(u.Hostname(), strconv.Itoa(port))
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/fmi/data/vLatest/databases/" + url.PathEscape(c.Database)
	return u.String(), nil
}

// NewHTTPClient creates the HTTP client used when none is supplied.
func (c *Config) NewHTTPClient() *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	if c.TLSVerify != nil && !*c.TLSVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &http.Client{
		Timeout:   c.Timeout,
		Transport: transport,
	}
}
