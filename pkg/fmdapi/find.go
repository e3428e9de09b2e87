package fmdapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// FindParams shape a find request.
type FindParams struct {
	Layout string

	// Query is one criterion map (field name to match expression) or a
	// slice of them. A single map is coerced to a one-element slice;
	// multiple criteria combine under the server's find semantics.
	// Required.
	Query any

	// Sort is a field name, a SortField, or a slice of either,
	// coerced like ListParams.Sort.
	Sort any

	// Limit and Offset page through the found set. Zero means unset.
	Limit  int
	Offset int

	// IgnoreEmptyResult resolves a "no records match the request"
	// failure (FileMaker error 401) to an empty record set instead of
	// an error. All other errors propagate unchanged.
	IgnoreEmptyResult bool

	// Extra is merged into the request body, e.g. portal or script
	// execution keys.
	Extra map[string]any
}

// Find searches a layout. A find that matches nothing is an error on
// the wire (FileMaker error 401); set IgnoreEmptyResult to receive an
// empty set instead.
func (c *Client) Find(ctx context.Context, p FindParams) (*RecordSet, error) {
	layout, err := c.resolveLayout(p.Layout)
	if err != nil {
		return nil, &Error{Op: "Find", Err: err}
	}
	if p.Query == nil {
		return nil, &Error{Op: "Find", Err: ErrNoQuery}
	}

	body := map[string]any{"query": coerceSlice(p.Query)}
	if p.Sort != nil {
		body["sort"] = coerceSlice(p.Sort)
	}
	if p.Limit > 0 {
		body["limit"] = p.Limit
	}
	if p.Offset > 0 {
		body["offset"] = p.Offset
	}
	for k, v := range p.Extra {
		if k != "query" {
			body[k] = v
		}
	}

	raw, err := c.do(ctx, &apiRequest{
		method: http.MethodPost,
		path:   "/layouts/" + url.PathEscape(layout) + "/_find",
		body:   body,
	})
	if err != nil {
		var apiErr *APIError
		if p.IgnoreEmptyResult && errors.As(err, &apiErr) && apiErr.Code == errCodeNoMatch {
			return &RecordSet{Data: []Record{}}, nil
		}
		return nil, err
	}
	return decodeRecordSet(raw)
}

// FindOne searches and requires exactly one match. Any other count
// fails with an error naming the actual count. The no-match error is
// suppressed internally so a zero-record result reports a count of 0
// rather than a server error.
func (c *Client) FindOne(ctx context.Context, p FindParams) (*Record, error) {
	p.IgnoreEmptyResult = true
	set, err := c.Find(ctx, p)
	if err != nil {
		return nil, err
	}
	if len(set.Data) != 1 {
		return nil, &Error{
			Op:  "FindOne",
			Err: ErrRecordCount,
			Msg: fmt.Sprintf("%d records found", len(set.Data)),
		}
	}
	return &set.Data[0], nil
}

// FindFirst searches and returns the first match, or nil without error
// when nothing matches.
func (c *Client) FindFirst(ctx context.Context, p FindParams) (*Record, error) {
	p.IgnoreEmptyResult = true
	set, err := c.Find(ctx, p)
	if err != nil {
		return nil, err
	}
	if len(set.Data) == 0 {
		return nil, nil
	}
	return &set.Data[0], nil
}
