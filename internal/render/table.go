package render

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"tushare/internal/dataset"
)

// TableMaxRows caps the rows shown by the console table.
const TableMaxRows = 20

// renderTable draws a rounded console table. When rows are left out the
// notice is appended as one extra table row.
func renderTable(rows []dataset.Row) string {
	fields := dataset.DisplayFields(rows)

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	// Field names are shown as sent by the API, not upper-cased.
	t.Style().Format.Header = text.FormatDefault

	header := make(table.Row, len(fields))
	for i, f := range fields {
		header[i] = f
	}
	t.AppendHeader(header)

	shown := rows
	if len(shown) > TableMaxRows {
		shown = shown[:TableMaxRows]
	}
	for _, row := range shown {
		r := make(table.Row, len(fields))
		for i, f := range fields {
			r[i] = FormatValue(row[f])
		}
		t.AppendRow(r)
	}

	if len(rows) > TableMaxRows {
		t.AppendRow(table.Row{truncationNotice(len(rows), TableMaxRows)})
	}

	return t.Render() + "\n"
}
