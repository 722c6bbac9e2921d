package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"tushare/internal/dataset"
	tstrings "tushare/pkg/strings"
)

const (
	// MarkdownMaxRows caps the rows written by the Markdown renderer.
	MarkdownMaxRows = 100
	// MarkdownMaxCellWidth is the widest a Markdown cell may be, in runes.
	MarkdownMaxCellWidth = 30
)

// renderMarkdown writes a padded Markdown table of at most MarkdownMaxRows
// rows, followed by a notice line when rows were left out.
func renderMarkdown(rows []dataset.Row) string {
	fields := dataset.DisplayFields(rows)
	shown := rows
	if len(shown) > MarkdownMaxRows {
		shown = shown[:MarkdownMaxRows]
	}

	cells := make([][]string, len(shown))
	widths := make([]int, len(fields))
	header := make([]string, len(fields))
	for i, f := range fields {
		header[i] = escapeMarkdown(f)
		widths[i] = utf8.RuneCountInString(header[i])
	}
	for r, row := range shown {
		cells[r] = make([]string, len(fields))
		for i, f := range fields {
			v := escapeMarkdown(tstrings.Truncate(FormatValue(row[f]), MarkdownMaxCellWidth))
			cells[r][i] = v
			widths[i] = max(widths[i], utf8.RuneCountInString(v))
		}
	}

	var sb strings.Builder
	writeMarkdownLine(&sb, header, widths)

	separator := make([]string, len(fields))
	for i, w := range widths {
		separator[i] = strings.Repeat("-", w)
	}
	writeMarkdownLine(&sb, separator, widths)

	for _, row := range cells {
		writeMarkdownLine(&sb, row, widths)
	}

	if len(rows) > MarkdownMaxRows {
		fmt.Fprintf(&sb, "\n%s\n", truncationNotice(len(rows), MarkdownMaxRows))
	}
	return sb.String()
}

// writeMarkdownLine pads each cell to its column width; fmt widths count runes.
func writeMarkdownLine(sb *strings.Builder, cells []string, widths []int) {
	padded := make([]string, len(cells))
	for i, c := range cells {
		padded[i] = fmt.Sprintf("%-*s", widths[i], c)
	}
	sb.WriteString("| ")
	sb.WriteString(strings.Join(padded, " | "))
	sb.WriteString(" |\n")
}

var markdownEscaper = strings.NewReplacer(
	"|", `\|`,
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
)

// escapeMarkdown keeps a value on one table line and inside its cell.
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
