// Package output provides output formatting for redisgate-cli.
package output

import "io"

// Format represents the output format.
type Format string

const (
	FormatRaw   Format = "raw"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

// Formatter formats data for output.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// NewFormatter creates a formatter for the given format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	case FormatTable:
		return &TableFormatter{}
	default:
		return &RawFormatter{}
	}
}
