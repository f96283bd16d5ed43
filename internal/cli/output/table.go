// Package output provides output formatting for redisgate-cli.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
)

// Table is a simple header/rows table rendered with tabwriter.
type Table struct {
	Headers []string
	Rows    [][]string
}

// AddRow appends a row to the table.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Render writes the table to w.
func (t *Table) Render(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	if len(t.Headers) > 0 {
		fmt.Fprintln(tw, strings.Join(t.Headers, "\t"))
	}
	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	return tw.Flush()
}

// TableFormatter renders supported shapes as an ASCII table.
type TableFormatter struct{}

// Format renders data as a table. Maps become KEY/VALUE rows sorted by
// key; slices become numbered rows; anything else falls back to raw.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	switch v := data.(type) {
	case *Table:
		return v.Render(w)
	case Table:
		return v.Render(w)
	case map[string]any:
		t := &Table{Headers: []string{"KEY", "VALUE"}}
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			t.AddRow(k, cell(v[k]))
		}
		return t.Render(w)
	case []any:
		t := &Table{Headers: []string{"#", "RESULT"}}
		for i, item := range v {
			t.AddRow(fmt.Sprintf("%d", i+1), cell(item))
		}
		return t.Render(w)
	default:
		raw := &RawFormatter{}
		return raw.Format(w, data)
	}
}

func cell(v any) string {
	switch x := v.(type) {
	case nil:
		return "(nil)"
	case string:
		return x
	default:
		return fmt.Sprintf("%v", x)
	}
}
