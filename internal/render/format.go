package render

import "strings"

// Format is the closed set of output formats.
type Format string

const (
	// FormatTable renders a boxed console table capped at TableMaxRows.
	FormatTable Format = "table"
	// FormatJSON renders the rows as a JSON array.
	FormatJSON Format = "json"
	// FormatCSV renders comma-separated values with a header line.
	FormatCSV Format = "csv"
	// FormatMarkdown renders a Markdown table capped at MarkdownMaxRows.
	FormatMarkdown Format = "markdown"
)

// ValidFormats lists every supported format in help order.
var ValidFormats = []Format{
	FormatJSON,
	FormatTable,
	FormatCSV,
	FormatMarkdown,
}

// ParseFormat resolves a format name case-insensitively.
func ParseFormat(s string) (Format, bool) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTable, FormatJSON, FormatCSV, FormatMarkdown:
		return f, true
	default:
		return "", false
	}
}

// FormatNames returns the valid format names joined for messages, e.g. "json|table|csv|markdown".
func FormatNames() string {
	names := make([]string, len(ValidFormats))
	for i, f := range ValidFormats {
		names[i] = string(f)
	}
	return strings.Join(names, "|")
}
