package fmdapi

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// DecodeFieldData decodes a record's field data into out, which must be
// a pointer to a struct. Field names match via `json` tags. Decoding is
// weakly typed because the Data API returns number fields as JSON
// numbers but empty number fields as "".
func DecodeFieldData(rec *Record, out any) error {
	return decodeLoose(rec.FieldData, out)
}

// DecodeRecords decodes the field data of every record in a set into
// out, which must be a pointer to a slice of structs.
func DecodeRecords(set *RecordSet, out any) error {
	fields := make([]map[string]any, 0, len(set.Data))
	for _, rec := range set.Data {
		fields = append(fields, rec.FieldData)
	}
	return decodeLoose(fields, out)
}

func decodeLoose(input, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := dec.Decode(input); err != nil {
		return fmt.Errorf("failed to decode field data: %w", err)
	}
	return nil
}
