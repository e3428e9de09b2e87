package fmdapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// ScriptParams name a FileMaker script to execute in the context of a
// layout.
type ScriptParams struct {
	Layout string

	// Name is the script name. Required.
	Name string

	// Param is the optional script parameter, passed verbatim.
	Param string
}

// ScriptResult reports the outcome of a script run. Error is the
// FileMaker error code produced by the script, "0" on success.
type ScriptResult struct {
	Error  string `json:"scriptError"`
	Result string `json:"scriptResult,omitempty"`
}

// RunScript executes a script and returns its error code and result.
func (c *Client) RunScript(ctx context.Context, p ScriptParams) (*ScriptResult, error) {
	layout, err := c.resolveLayout(p.Layout)
	if err != nil {
		return nil, &Error{Op: "RunScript", Err: err}
	}
	if p.Name == "" {
		return nil, &Error{Op: "RunScript", Err: ErrNoScript}
	}

	var query map[string]string
	if p.Param != "" {
		query = map[string]string{"script.param": p.Param}
	}

	raw, err := c.do(ctx, &apiRequest{
		method: http.MethodGet,
		path:   "/layouts/" + url.PathEscape(layout) + "/script/" + url.PathEscape(p.Name),
		query:  query,
	})
	if err != nil {
		return nil, err
	}

	var res ScriptResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("failed to decode script response: %w", err)
	}
	return &res, nil
}
