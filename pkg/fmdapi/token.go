package fmdapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"
)

// tokenHeader carries the session token in a successful login response.
const tokenHeader = "X-FM-Data-Access-Token"

// authMode selects between the two mutually exclusive authentication
// shapes. It is fixed for the lifetime of a client.
type authMode int

const (
	authAPIKey authMode = iota
	authCredentials
)

// tokenManager owns the cached session token. Under API-key
// authentication the "token" is the key itself and never changes; under
// credential authentication it is created lazily via the sessions
// endpoint and cached until cleared.
type tokenManager struct {
	mode     authMode
	apiKey   string
	username string
	password string

	sessionsURL string
	httpClient  *http.Client
	logger      hclog.Logger

	mu    sync.Mutex
	token string // empty means no session
}

func newTokenManager(cfg *Config, baseURL string, httpClient *http.Client, logger hclog.Logger) *tokenManager {
	m := &tokenManager{
		sessionsURL: baseURL + "/sessions",
		httpClient:  httpClient,
		logger:      logger.Named("token"),
	}
	if cfg.APIKey != "" {
		m.mode = authAPIKey
		m.apiKey = cfg.APIKey
	} else {
		m.mode = authCredentials
		m.username = cfg.Username
		m.password = cfg.Password
	}
	return m
}

// getToken returns the credential for the next request. API-key mode
// never performs network I/O. Credential mode logs in when the cache is
// empty; the mutex is held across the login call, so concurrent callers
// with no cached token share a single login instead of racing one each.
func (m *tokenManager) getToken(ctx context.Context, forceRefresh bool) (string, error) {
	if m.mode == authAPIKey {
		return m.apiKey, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if forceRefresh {
		m.token = ""
	}
	if m.token != "" {
		return m.token, nil
	}

	token, err := m.login(ctx)
	if err != nil {
		return "", err
	}
	m.token = token
	return token, nil
}

// clear drops the cached session token. The next request logs in again.
func (m *tokenManager) clear() {
	if m.mode == authAPIKey {
		return
	}
	m.mu.Lock()
	m.token = ""
	m.mu.Unlock()
}

// login creates a Data API session and returns its token. No retry here;
// whoever needs a fresh token calls getToken with forceRefresh.
func (m *tokenManager) login(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.sessionsURL, strings.NewReader("{}"))
	if err != nil {
		return "", fmt.Errorf("failed to create login request: %w", err)
	}
	req.SetBasicAuth(m.username, m.password)
	req.Header.Set("Content-Type", "application/json")

	m.logger.Debug("creating session", "url", m.sessionsURL, "user", m.username)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read login response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var env envelope
		if err := json.Unmarshal(body, &env); err == nil && len(env.Messages) > 0 {
			return "", &APIError{Code: env.Messages[0].Code, Message: env.Messages[0].Message}
		}
		return "", fmt.Errorf("login failed with status %d: %s", resp.StatusCode, string(body))
	}

	token := resp.Header.Get(tokenHeader)
	if token == "" {
		return "", &Error{Op: "Login", Err: ErrNoToken}
	}

	m.logger.Debug("session created")
	return token, nil
}
