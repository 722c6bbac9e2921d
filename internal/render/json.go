package render

import (
	"bytes"
	"encoding/json"

	"tushare/internal/dataset"
)

// renderJSON encodes rows verbatim. Values keep their decoded JSON types and
// HTML characters are not escaped.
func renderJSON(rows []dataset.Row, pretty bool) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(rows); err != nil {
		return "", err
	}
	return buf.String(), nil
}
