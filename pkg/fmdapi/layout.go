package fmdapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// FieldMetadata describes one field on a layout.
type FieldMetadata struct {
	Name          string `json:"name"`
	Type          string `json:"type"`
	DisplayType   string `json:"displayType"`
	Result        string `json:"result"`
	Global        bool   `json:"global"`
	AutoEnter     bool   `json:"autoEnter"`
	FourDigitYear bool   `json:"fourDigitYear"`
	MaxRepeat     int    `json:"maxRepeat"`
	MaxCharacters int    `json:"maxCharacters"`
	NotEmpty      bool   `json:"notEmpty"`
	Numeric       bool   `json:"numeric"`
	TimeOfDay     bool   `json:"timeOfDay"`
}

// ValueListItem is one entry of a layout value list.
type ValueListItem struct {
	DisplayValue string `json:"displayValue"`
	Value        string `json:"value"`
}

// ValueList is a named value list attached to a layout.
type ValueList struct {
	Name   string          `json:"name"`
	Type   string          `json:"type,omitempty"`
	Values []ValueListItem `json:"values"`
}

// LayoutMetadata is the schema of one layout as reported by the server.
type LayoutMetadata struct {
	FieldMetaData  []FieldMetadata            `json:"fieldMetaData"`
	PortalMetaData map[string][]FieldMetadata `json:"portalMetaData,omitempty"`
	ValueLists     []ValueList                `json:"valueLists,omitempty"`
}

// MetadataParams name the layout to describe.
type MetadataParams struct {
	Layout string
}

// Metadata fetches the field and portal schema of a layout.
func (c *Client) Metadata(ctx context.Context, p MetadataParams) (*LayoutMetadata, error) {
	layout, err := c.resolveLayout(p.Layout)
	if err != nil {
		return nil, &Error{Op: "Metadata", Err: err}
	}

	raw, err := c.do(ctx, &apiRequest{
		method: http.MethodGet,
		path:   "/layouts/" + url.PathEscape(layout),
	})
	if err != nil {
		return nil, err
	}

	var meta LayoutMetadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, fmt.Errorf("failed to decode layout metadata: %w", err)
	}
	return &meta, nil
}

// LayoutListItem is one entry of the database's layout listing. Folder
// entries nest their children under FolderLayoutNames.
type LayoutListItem struct {
	Name              string           `json:"name"`
	IsFolder          bool             `json:"isFolder,omitempty"`
	FolderLayoutNames []LayoutListItem `json:"folderLayoutNames,omitempty"`
}

// Layouts lists every layout in the database. No layout resolution
// happens here; the call is database-scoped.
func (c *Client) Layouts(ctx context.Context) ([]LayoutListItem, error) {
	raw, err := c.do(ctx, &apiRequest{
		method: http.MethodGet,
		path:   "/layouts",
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Layouts []LayoutListItem `json:"layouts"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode layout list: %w", err)
	}
	return payload.Layouts, nil
}
