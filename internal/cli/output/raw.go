// Package output provides output formatting for redisgate-cli.
package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// RawFormatter prints values the way redis-cli does: strings verbatim,
// nil as (nil), arrays as numbered lines.
type RawFormatter struct{}

// Format writes data in raw form.
func (f *RawFormatter) Format(w io.Writer, data any) error {
	return writeRaw(w, data, "")
}

func writeRaw(w io.Writer, data any, indent string) error {
	switch v := data.(type) {
	case nil:
		_, err := fmt.Fprintf(w, "%s(nil)\n", indent)
		return err
	case string:
		_, err := fmt.Fprintf(w, "%s%s\n", indent, v)
		return err
	case bool:
		_, err := fmt.Fprintf(w, "%s%t\n", indent, v)
		return err
	case json.Number:
		_, err := fmt.Fprintf(w, "%s%s\n", indent, v.String())
		return err
	case float64:
		// Encoding/json decodes numbers as float64; print integers
		// without the trailing ".0" redis never shows.
		if v == float64(int64(v)) {
			_, err := fmt.Fprintf(w, "%s%d\n", indent, int64(v))
			return err
		}
		_, err := fmt.Fprintf(w, "%s%g\n", indent, v)
		return err
	case []any:
		if len(v) == 0 {
			_, err := fmt.Fprintf(w, "%s(empty array)\n", indent)
			return err
		}
		for i, item := range v {
			if _, err := fmt.Fprintf(w, "%s%d) ", indent, i+1); err != nil {
				return err
			}
			if err := writeRaw(w, item, ""); err != nil {
				return err
			}
		}
		return nil
	default:
		_, err := fmt.Fprintf(w, "%s%v\n", indent, v)
		return err
	}
}
