// Package dataset holds the places readings can be fetched from. Every
// source returns the whole dataset on each Fetch and keeps nothing between
// calls.
package dataset

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Nixie-Tech-LLC/biblemind/internal/reading"
)

// Decode turns a serialized dataset (a JSON array of objects) into records.
// A JSON string holding such an array is unwrapped first, which is what some
// sheet exporters produce.
func Decode(data []byte) ([]reading.Record, error) {
	var records []reading.Record
	err := json.Unmarshal(data, &records)
	if err == nil {
		return records, nil
	}

	var wrapped string
	if json.Unmarshal(data, &wrapped) == nil {
		if err := json.Unmarshal([]byte(wrapped), &records); err != nil {
			return nil, fmt.Errorf("decode dataset: %w", err)
		}
		return records, nil
	}
	return nil, fmt.Errorf("decode dataset: %w", err)
}

// FromRows converts a header row followed by data rows into records. Header
// names are trimmed and lower-cased; columns with a blank header are dropped,
// and so are cells past the end of a short row. Rows with no cells at all are
// skipped.
func FromRows(rows [][]any) []reading.Record {
	if len(rows) == 0 {
		return nil
	}

	header := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(fmt.Sprint(cell)))
	}

	records := make([]reading.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		fields := make(map[string]any, len(header))
		for i, name := range header {
			if name == "" || i >= len(row) {
				continue
			}
			fields[name] = row[i]
		}
		records = append(records, reading.NewRecord(fields))
	}
	return records
}

func stringRows(rows [][]string) [][]any {
	out := make([][]any, len(rows))
	for i, row := range rows {
		cells := make([]any, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		out[i] = cells
	}
	return out
}
