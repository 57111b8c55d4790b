package record

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Column headers recognized by ReadCSV. Matching is case-insensitive
// after trimming; unknown columns are ignored.
var csvColumns = map[string]func(*Record, string){
	"email":        func(r *Record, v string) { r.Email = v },
	"phone_number": func(r *Record, v string) { r.PhoneNumber = v },
	"given_name":   func(r *Record, v string) { r.GivenName = v },
	"family_name":  func(r *Record, v string) { r.FamilyName = v },
	"region_code":  func(r *Record, v string) { r.RegionCode = v },
}

// ReadCSV decodes header-driven CSV input into records.
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	setters := make(map[int]func(*Record, string))
	for i, name := range header {
		if set, ok := csvColumns[strings.ToLower(strings.TrimSpace(name))]; ok {
			setters[i] = set
		}
	}
	if len(setters) == 0 {
		return nil, errors.New("csv header contains no recognized columns")
	}

	var out []Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		var rec Record
		for i, set := range setters {
			if i < len(row) {
				set(&rec, row[i])
			}
		}
		out = append(out, rec)
	}
	return out, nil
}
