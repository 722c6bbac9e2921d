package render

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// ArrayPlaceholder stands in for nested arrays in text formats.
	ArrayPlaceholder = "[array]"
	// ObjectPlaceholder stands in for nested objects in text formats.
	ObjectPlaceholder = "[object]"
)

// FormatValue converts a row value into its display text for the table, CSV
// and Markdown renderers. Nested values are never expanded.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(val)
	case string:
		return val
	case float64:
		return formatNumber(val)
	case float32:
		return formatNumber(float64(val))
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case json.Number:
		return formatJSONNumber(val)
	case []any:
		return ArrayPlaceholder
	case map[string]any:
		return ObjectPlaceholder
	default:
		return fmt.Sprintf("%v", val)
	}
}

// formatNumber prints integral values without a fraction and everything else
// as the shortest decimal that round-trips.
func formatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1<<63 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatJSONNumber prints integer literals exactly, whatever their size, and
// other literals like a float64.
func formatJSONNumber(n json.Number) string {
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10)
	}
	if isIntegerLiteral(n.String()) {
		return strings.TrimPrefix(n.String(), "+")
	}
	if f, err := n.Float64(); err == nil {
		return formatNumber(f)
	}
	return n.String()
}

func isIntegerLiteral(s string) bool {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "-"), "+")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// EscapeCSV quotes a value when it contains a comma, a double quote or a
// newline, doubling any embedded quotes.
func EscapeCSV(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
