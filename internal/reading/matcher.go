package reading

import "fmt"

// Match returns the first record, in dataset order, whose date normalizes to
// key. Records without a usable date never match.
func Match(key Key, records []Record) (Record, bool) {
	for _, rec := range records {
		k, ok := rec.Key()
		if !ok {
			continue
		}
		if k == key {
			return rec, true
		}
	}
	return Record{}, false
}

// Fallback is served when no record exists for the requested day. display is
// shown as-is, so it stays in the DD-MM-YYYY form the caller used.
func Fallback(display string) Record {
	return NewRecord(map[string]any{
		FieldOT:     fmt.Sprintf("No Old Testament reading for %s.", display),
		FieldGospel: fmt.Sprintf("No Gospel reading for %s.", display),
		FieldPope:   fmt.Sprintf("No Pope reflection for %s.", display),
		FieldDate:   display,
	})
}
