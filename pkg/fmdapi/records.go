package fmdapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ListParams shape a GET over a layout's records.
type ListParams struct {
	// Layout overrides the configured default layout.
	Layout string

	// Limit and Offset page through the record set. Zero means unset;
	// neither is sent unless positive.
	Limit  int
	Offset int

	// Sort is a field name, a SortField, or a slice of either. A
	// non-slice value is wrapped in a one-element slice before being
	// JSON-encoded into the _sort query parameter.
	Sort any

	// Params are passed through to the query string unchanged, e.g.
	// "script" or "portal" parameters.
	Params map[string]string
}

// List fetches a page of records from a layout.
func (c *Client) List(ctx context.Context, p ListParams) (*RecordSet, error) {
	layout, err := c.resolveLayout(p.Layout)
	if err != nil {
		return nil, &Error{Op: "List", Err: err}
	}

	query := make(map[string]string, len(p.Params)+3)
	for k, v := range p.Params {
		query[k] = v
	}
	if p.Limit > 0 {
		query["_limit"] = strconv.Itoa(p.Limit)
	}
	if p.Offset > 0 {
		query["_offset"] = strconv.Itoa(p.Offset)
	}
	if p.Sort != nil {
		encoded, err := json.Marshal(coerceSlice(p.Sort))
		if err != nil {
			return nil, fmt.Errorf("failed to encode sort order: %w", err)
		}
		query["_sort"] = string(encoded)
	}

	raw, err := c.do(ctx, &apiRequest{
		method: http.MethodGet,
		path:   recordsPath(layout),
		query:  query,
	})
	if err != nil {
		return nil, err
	}
	return decodeRecordSet(raw)
}

// CreateParams shape a record creation.
type CreateParams struct {
	Layout string

	// FieldData holds the new record's field values. May be empty to
	// create a blank record.
	FieldData map[string]any

	// Extra is merged into the request body alongside fieldData, e.g.
	// portalData or script execution keys.
	Extra map[string]any
}

// Create inserts a record and returns its identity.
func (c *Client) Create(ctx context.Context, p CreateParams) (*CreateResult, error) {
	layout, err := c.resolveLayout(p.Layout)
	if err != nil {
		return nil, &Error{Op: "Create", Err: err}
	}

	fieldData := p.FieldData
	if fieldData == nil {
		fieldData = map[string]any{}
	}
	body := map[string]any{"fieldData": fieldData}
	for k, v := range p.Extra {
		if k != "fieldData" {
			body[k] = v
		}
	}

	raw, err := c.do(ctx, &apiRequest{
		method: http.MethodPost,
		path:   recordsPath(layout),
		body:   body,
	})
	if err != nil {
		return nil, err
	}

	var res CreateResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("failed to decode create response: %w", err)
	}
	return &res, nil
}

// GetParams shape a single-record fetch.
type GetParams struct {
	Layout   string
	RecordID string

	// Params are passed through to the query string unchanged.
	Params map[string]string
}

// Get fetches one record by its internal record id. The Data API
// returns even a single record as a one-element set.
func (c *Client) Get(ctx context.Context, p GetParams) (*RecordSet, error) {
	layout, err := c.resolveLayout(p.Layout)
	if err != nil {
		return nil, &Error{Op: "Get", Err: err}
	}

	raw, err := c.do(ctx, &apiRequest{
		method: http.MethodGet,
		path:   recordsPath(layout) + "/" + url.PathEscape(p.RecordID),
		query:  p.Params,
	})
	if err != nil {
		return nil, err
	}
	return decodeRecordSet(raw)
}

// UpdateParams shape a record edit.
type UpdateParams struct {
	Layout   string
	RecordID string

	// FieldData holds the fields to change; unnamed fields keep their
	// values.
	FieldData map[string]any

	// Extra is merged into the request body alongside fieldData.
	Extra map[string]any
}

// Update edits a record in place.
func (c *Client) Update(ctx context.Context, p UpdateParams) (*UpdateResult, error) {
	layout, err := c.resolveLayout(p.Layout)
	if err != nil {
		return nil, &Error{Op: "Update", Err: err}
	}

	fieldData := p.FieldData
	if fieldData == nil {
		fieldData = map[string]any{}
	}
	body := map[string]any{"fieldData": fieldData}
	for k, v := range p.Extra {
		if k != "fieldData" {
			body[k] = v
		}
	}

	raw, err := c.do(ctx, &apiRequest{
		method: http.MethodPatch,
		path:   recordsPath(layout) + "/" + url.PathEscape(p.RecordID),
		body:   body,
	})
	if err != nil {
		return nil, err
	}

	var res UpdateResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("failed to decode update response: %w", err)
	}
	return &res, nil
}

// DeleteParams shape a record deletion.
type DeleteParams struct {
	Layout   string
	RecordID string

	// Params are passed through to the query string unchanged.
	Params map[string]string
}

// Delete removes a record.
func (c *Client) Delete(ctx context.Context, p DeleteParams) error {
	layout, err := c.resolveLayout(p.Layout)
	if err != nil {
		return &Error{Op: "Delete", Err: err}
	}

	_, err = c.do(ctx, &apiRequest{
		method: http.MethodDelete,
		path:   recordsPath(layout) + "/" + url.PathEscape(p.RecordID),
		query:  p.Params,
	})
	return err
}

// DuplicateParams shape a record duplication.
type DuplicateParams struct {
	Layout   string
	RecordID string
}

// Duplicate copies an existing record and returns the copy's identity.
func (c *Client) Duplicate(ctx context.Context, p DuplicateParams) (*CreateResult, error) {
	layout, err := c.resolveLayout(p.Layout)
	if err != nil {
		return nil, &Error{Op: "Duplicate", Err: err}
	}

	raw, err := c.do(ctx, &apiRequest{
		method: http.MethodPost,
		path:   recordsPath(layout) + "/" + url.PathEscape(p.RecordID),
	})
	if err != nil {
		return nil, err
	}

	var res CreateResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("failed to decode duplicate response: %w", err)
	}
	return &res, nil
}
