package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// PlainTableWriter writes borderless, space-aligned columns.
// Widths are measured in terminal cells, so CJK text lines up.
type PlainTableWriter struct {
	headers      []string
	rows         [][]string
	columnWidths []int
	// minPadding is the minimum space between columns
	minPadding  int
	indent      string
	showHeaders bool
	output      io.Writer
}

// NewPlainTableWriter creates a writer with headers shown and a padding of
// three spaces between columns.
func NewPlainTableWriter(output io.Writer) *PlainTableWriter {
	return &PlainTableWriter{
		headers:      []string{},
		rows:         [][]string{},
		columnWidths: []int{},
		minPadding:   3,
		showHeaders:  true,
		output:       output,
	}
}

// SetHeaders sets the column headers. Headers are upper-cased.
func (w *PlainTableWriter) SetHeaders(headers []string) {
	w.headers = make([]string, len(headers))
	w.columnWidths = make([]int, len(headers))
	for i, h := range headers {
		upper := strings.ToUpper(h)
		w.headers[i] = upper
		w.columnWidths[i] = runewidth.StringWidth(upper)
	}
}

// SetNoHeaders controls whether to suppress the header row.
func (w *PlainTableWriter) SetNoHeaders(noHeaders bool) {
	w.showHeaders = !noHeaders
}

// SetIndent prefixes every line with n spaces.
func (w *PlainTableWriter) SetIndent(n int) {
	w.indent = strings.Repeat(" ", max(n, 0))
}

// SetPadding sets the minimum number of spaces between columns.
func (w *PlainTableWriter) SetPadding(n int) {
	w.minPadding = max(n, 1)
}

// AppendRow adds a row. Missing cells are empty and surplus cells dropped.
func (w *PlainTableWriter) AppendRow(row []string) {
	normalized := make([]string, len(w.headers))
	for i := range w.headers {
		if i < len(row) {
			normalized[i] = row[i]
			w.columnWidths[i] = max(w.columnWidths[i], runewidth.StringWidth(row[i]))
		}
	}
	w.rows = append(w.rows, normalized)
}

// Len reports the number of data rows.
func (w *PlainTableWriter) Len() int {
	return len(w.rows)
}

// Render writes the table. Nothing is written without headers, or when there
// are no rows and headers are suppressed.
func (w *PlainTableWriter) Render() error {
	if len(w.headers) == 0 {
		return nil
	}
	if len(w.rows) == 0 && !w.showHeaders {
		return nil
	}

	var sb strings.Builder
	if w.showHeaders {
		w.writeRow(&sb, w.headers)
	}
	for _, row := range w.rows {
		w.writeRow(&sb, row)
	}

	_, err := io.WriteString(w.output, sb.String())
	return err
}

func (w *PlainTableWriter) writeRow(sb *strings.Builder, row []string) {
	var line strings.Builder
	line.WriteString(w.indent)
	for i, cell := range row {
		line.WriteString(cell)
		if i < len(row)-1 {
			pad := w.columnWidths[i] - runewidth.StringWidth(cell) + w.minPadding
			line.WriteString(strings.Repeat(" ", pad))
		}
	}
	fmt.Fprintln(sb, strings.TrimRight(line.String(), " "))
}
