// Package dataset rebuilds row objects from the columnar blocks returned by
// the Tushare API.
//
// The API sends field names once and each record as a positional array:
//
//	{"fields": ["ts_code", "close"], "items": [["000001.SZ", 11.2], ...]}
//
// ToRows turns that into one Row per record keyed by field name. Ragged
// records are tolerated: missing trailing values are left out of the row and
// surplus values are dropped.
package dataset

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
)

// Row maps a field name to a scalar (string, json.Number, bool, nil) or a
// nested []any / map[string]any value as decoded from JSON. Numbers keep
// their literal text so large integers are not rounded.
type Row map[string]any

// Block is the columnar payload of a successful reply.
type Block struct {
	Fields []string `json:"fields"`
	Items  [][]any  `json:"items"`
}

// UnmarshalJSON accepts "fields" either as a comma-separated string or as an
// array of strings. Non-string array entries are skipped and any other shape
// yields no fields; neither case is an error.
func (b *Block) UnmarshalJSON(data []byte) error {
	var raw struct {
		Fields json.RawMessage `json:"fields"`
		Items  [][]any         `json:"items"`
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	b.Fields = decodeFields(raw.Fields)
	b.Items = raw.Items
	if b.Items == nil {
		b.Items = [][]any{}
	}
	return nil
}

func decodeFields(raw json.RawMessage) []string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return []string{}
	}

	switch raw[0] {
	case '"':
		var joined string
		if err := json.Unmarshal(raw, &joined); err != nil {
			return []string{}
		}
		return SplitFields(joined)
	case '[':
		var entries []any
		if err := json.Unmarshal(raw, &entries); err != nil {
			return []string{}
		}
		fields := make([]string, 0, len(entries))
		for _, e := range entries {
			if s, ok := e.(string); ok {
				fields = append(fields, s)
			}
		}
		return fields
	default:
		return []string{}
	}
}

// SplitFields splits a comma-separated field list and trims each name.
func SplitFields(joined string) []string {
	parts := strings.Split(joined, ",")
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		fields = append(fields, strings.TrimSpace(p))
	}
	return fields
}

// ToRows reconstructs one Row per item. A nil block is "no data" and yields an
// empty slice.
func ToRows(b *Block) []Row {
	if b == nil {
		return []Row{}
	}

	rows := make([]Row, 0, len(b.Items))
	for _, item := range b.Items {
		row := make(Row, len(b.Fields))
		for j, field := range b.Fields {
			if j >= len(item) {
				break
			}
			row[field] = item[j]
		}
		rows = append(rows, row)
	}
	return rows
}

// FromRows is the inverse of ToRows for rectangular data: each row becomes an
// item with values in fields order. Keys missing from a row end that item, so
// the reconstruction omits them again.
func FromRows(rows []Row, fields []string) *Block {
	b := &Block{
		Fields: append([]string(nil), fields...),
		Items:  make([][]any, 0, len(rows)),
	}
	for _, row := range rows {
		item := make([]any, 0, len(fields))
		for _, f := range fields {
			v, ok := row[f]
			if !ok {
				break
			}
			item = append(item, v)
		}
		b.Items = append(b.Items, item)
	}
	return b
}

// DisplayFields returns the sorted keys of the first row, which renderers use
// as their column order. It is empty when there are no rows.
func DisplayFields(rows []Row) []string {
	if len(rows) == 0 {
		return []string{}
	}
	fields := make([]string, 0, len(rows[0]))
	for k := range rows[0] {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	return fields
}
