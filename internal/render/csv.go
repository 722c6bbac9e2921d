package render

import (
	"strings"

	"tushare/internal/dataset"
)

// renderCSV writes a header line followed by every row; there is no row cap.
func renderCSV(rows []dataset.Row) string {
	fields := dataset.DisplayFields(rows)

	var sb strings.Builder
	writeCSVLine(&sb, fields)

	values := make([]string, len(fields))
	for _, row := range rows {
		for i, f := range fields {
			values[i] = FormatValue(row[f])
		}
		writeCSVLine(&sb, values)
	}
	return sb.String()
}

func writeCSVLine(sb *strings.Builder, values []string) {
	for i, v := range values {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(EscapeCSV(v))
	}
	sb.WriteByte('\n')
}
