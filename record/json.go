package record

import (
	"encoding/json"
	"fmt"
	"io"
)

// ReadJSON decodes a top-level JSON array of record objects.
func ReadJSON(r io.Reader) ([]Record, error) {
	var out []Record
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return nil, fmt.Errorf("parse json records: %w", err)
	}
	return out, nil
}
