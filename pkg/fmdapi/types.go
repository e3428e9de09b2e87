package fmdapi

import (
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
)

// Record is one row of a layout. Field and portal data are untyped;
// use DecodeFieldData to map them onto caller structs.
type Record struct {
	RecordID   string         `json:"recordId"`
	ModID      string         `json:"modId"`
	FieldData  map[string]any `json:"fieldData"`
	PortalData map[string]any `json:"portalData,omitempty"`
}

// DataInfo is the result-set summary the Data API attaches to record
// responses.
type DataInfo struct {
	Database         string `json:"database"`
	Layout           string `json:"layout"`
	Table            string `json:"table"`
	TotalRecordCount int    `json:"totalRecordCount"`
	FoundCount       int    `json:"foundCount"`
	ReturnedCount    int    `json:"returnedCount"`
}

// RecordSet is the payload of list, get and find responses.
type RecordSet struct {
	Data     []Record  `json:"data"`
	DataInfo *DataInfo `json:"dataInfo,omitempty"`
}

// CreateResult identifies a newly created (or duplicated) record.
type CreateResult struct {
	RecordID string `json:"recordId"`
	ModID    string `json:"modId"`
}

// UpdateResult carries the new modification id after an edit.
type UpdateResult struct {
	ModID string `json:"modId"`
}

// SortField is one entry of a sort order. SortOrder is "ascend" or
// "descend"; the server defaults to ascend when omitted.
type SortField struct {
	FieldName string `json:"fieldName"`
	SortOrder string `json:"sortOrder,omitempty"`
}

func decodeRecordSet(raw json.RawMessage) (*RecordSet, error) {
	var set RecordSet
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &set); err != nil {
			return nil, fmt.Errorf("failed to decode record set: %w", err)
		}
	}
	if set.Data == nil {
		set.Data = []Record{}
	}
	return &set, nil
}

// coerceSlice wraps a non-slice value in a one-element slice. The Data
// API requires sort orders and find queries to be sequences even when
// the caller has only one.
func coerceSlice(v any) any {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return v
	default:
		return []any{v}
	}
}

func recordsPath(layout string) string {
	return "/layouts/" + url.PathEscape(layout) + "/records"
}
