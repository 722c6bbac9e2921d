// Package render writes reconstructed rows to the terminal in one of the
// supported output formats.
//
// Render is the single entry point. It selects the renderer with one switch
// over the closed Format set; there is no registry. Every renderer builds its
// full output in memory and performs a single write, so a failing writer
// surfaces as one OutputError and never leaves half a table behind.
package render

import (
	"fmt"
	"io"

	"tushare/internal/dataset"
)

// NoDataMessage is printed by every format when there are no rows.
const NoDataMessage = "(no data)"

// OutputError reports a failure to produce or write rendered output.
type OutputError struct {
	Format Format
	Err    error
}

// Error implements the error interface.
func (e *OutputError) Error() string {
	return fmt.Sprintf("failed to write %s output: %v", e.Format, e.Err)
}

// Unwrap returns the underlying error.
func (e *OutputError) Unwrap() error {
	return e.Err
}

// Is allows errors.Is() to match any OutputError.
func (e *OutputError) Is(target error) bool {
	_, ok := target.(*OutputError)
	return ok
}

// Render writes rows to w in the given format. pretty only affects JSON.
func Render(w io.Writer, rows []dataset.Row, format Format, pretty bool) error {
	if len(rows) == 0 {
		return write(w, format, NoDataMessage+"\n")
	}

	var (
		out string
		err error
	)
	switch format {
	case FormatJSON:
		out, err = renderJSON(rows, pretty)
	case FormatCSV:
		out = renderCSV(rows)
	case FormatMarkdown:
		out = renderMarkdown(rows)
	case FormatTable:
		out = renderTable(rows)
	default:
		err = fmt.Errorf("unsupported output format %q", format)
	}
	if err != nil {
		return &OutputError{Format: format, Err: err}
	}
	return write(w, format, out)
}

func write(w io.Writer, format Format, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return &OutputError{Format: format, Err: err}
	}
	return nil
}

// truncationNotice is shared by the capped renderers.
func truncationNotice(total, shown int) string {
	return fmt.Sprintf("... (%d rows in total, showing the first %d)", total, shown)
}
