package format

import (
	"fmt"
	"io"

	"github.com/gosuri/uitable"
)

// WriteTable writes header and rows as aligned plain-text columns; cells
// wider than 60 columns are cut with an ellipsis. Columns
// listed in rightAlign (zero-based) are right-aligned.
func WriteTable(w io.Writer, header []string, rows [][]string, rightAlign ...int) error {
	t := uitable.New()
	t.Separator = "  "
	t.MaxColWidth = 60
	for _, c := range rightAlign {
		t.RightAlign(c)
	}
	t.AddRow(cells(header)...)
	for _, r := range rows {
		t.AddRow(cells(r)...)
	}
	_, err := fmt.Fprintln(w, t.String())
	return err
}

func cells(r []string) []any {
	out := make([]any, len(r))
	for i, c := range r {
		out[i] = c
	}
	return out
}
