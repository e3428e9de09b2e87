package fmdapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

// Message is one entry of the Data API response envelope's messages
// array. Codes are FileMaker error codes, "0" on success.
type Message struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// envelope is the wrapper the Data API puts around every payload,
// success or failure.
type envelope struct {
	Response json.RawMessage `json:"response"`
	Messages []Message       `json:"messages"`
}

// apiRequest describes one logical API call relative to the database
// base URL. Built fresh per operation, never retained.
type apiRequest struct {
	method string
	path   string
	query  map[string]string
	body   any
}

// do authorizes and performs one API call and unwraps the response
// envelope. Any non-2xx status becomes an *APIError; there is no retry
// of any kind here.
func (c *Client) do(ctx context.Context, r *apiRequest) (json.RawMessage, error) {
	endpoint := c.baseURL + r.path
	if len(r.query) > 0 {
		q := url.Values{}
		for k, v := range r.query {
			q.Set(k, v)
		}
		endpoint += "?" + q.Encode()
	}

	var bodyReader io.Reader
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}

	token, err := c.tokens.getToken(ctx, false)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, r.method, endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	reqID := uuid.NewString()
	c.logger.Debug("sending request", "id", reqID, "method", r.method, "path", r.path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	// Success and failure share the same envelope. A body that does not
	// parse (a proxy error page, usually) is treated as empty rather
	// than surfaced as a decode error.
	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		env = envelope{}
		respBody = []byte("{}")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		code := errSentinelCode
		if len(env.Messages) > 0 {
			code = env.Messages[0].Code
		}
		pretty := respBody
		var buf bytes.Buffer
		if err := json.Indent(&buf, respBody, "", "  "); err == nil {
			pretty = buf.Bytes()
		}
		c.logger.Debug("request failed", "id", reqID, "status", resp.StatusCode, "code", code)
		return nil, &APIError{
			Code:    code,
			Message: fmt.Sprintf("request failed with status %d: %s", resp.StatusCode, pretty),
		}
	}

	c.logger.Debug("request complete", "id", reqID, "status", resp.StatusCode)
	return env.Response, nil
}
