package reading

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const (
	FieldDate   = "date"
	FieldOT     = "ot"
	FieldGospel = "gospel"
	FieldPope   = "pope"
)

// Record is one dataset entry. The typed fields are nil when the source did
// not carry them as text; every field the source delivered is kept so a
// matched record is returned exactly as stored.
type Record struct {
	Date   *string
	OT     *string
	Gospel *string
	Pope   *string

	fields map[string]any
}

// NewRecord builds a Record from the raw fields of a dataset entry.
func NewRecord(fields map[string]any) Record {
	if fields == nil {
		fields = map[string]any{}
	}
	return Record{
		Date:   text(fields, FieldDate),
		OT:     text(fields, FieldOT),
		Gospel: text(fields, FieldGospel),
		Pope:   text(fields, FieldPope),
		fields: fields,
	}
}

func text(fields map[string]any, name string) *string {
	s, ok := fields[name].(string)
	if !ok {
		return nil
	}
	return &s
}

// Key reports the canonical date of the record, or false when the record has
// no usable date.
func (r Record) Key() (Key, bool) {
	if r.Date == nil {
		return "", false
	}
	return ParseRecordDate(*r.Date)
}

// Fields returns a copy of every field the record carries.
func (r Record) Fields() map[string]any {
	out := make(map[string]any, len(r.fields))
	for k, v := range r.fields {
		out[k] = v
	}
	return out
}

func (r Record) MarshalJSON() ([]byte, error) {
	if r.fields == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(r.fields)
}

func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return fmt.Errorf("decode reading record: %w", err)
	}
	*r = NewRecord(fields)
	return nil
}
