package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatRaw, "*output.RawFormatter"},
		{FormatJSON, "*output.JSONFormatter"},
		{FormatTable, "*output.TableFormatter"},
		{Format("bogus"), "*output.RawFormatter"},
	}

	for _, tt := range tests {
		f := NewFormatter(tt.format)
		if got := typeName(f); got != tt.want {
			t.Errorf("NewFormatter(%q) = %s, want %s", tt.format, got, tt.want)
		}
	}
}

func typeName(v any) string {
	switch v.(type) {
	case *RawFormatter:
		return "*output.RawFormatter"
	case *JSONFormatter:
		return "*output.JSONFormatter"
	case *TableFormatter:
		return "*output.TableFormatter"
	default:
		return "unknown"
	}
}

func TestRawFormatter(t *testing.T) {
	tests := []struct {
		name string
		data any
		want string
	}{
		{"string", "OK", "OK\n"},
		{"nil", nil, "(nil)\n"},
		{"integer float", float64(42), "42\n"},
		{"fraction", float64(1.5), "1.5\n"},
		{"json number", json.Number("7"), "7\n"},
		{"bool", true, "true\n"},
		{"empty array", []any{}, "(empty array)\n"},
		{"array", []any{"a", nil, float64(3)}, "1) a\n2) (nil)\n3) 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := (&RawFormatter{}).Format(&buf, tt.data); err != nil {
				t.Fatalf("Format: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	err := (&JSONFormatter{}).Format(&buf, map[string]any{"result": "OK"})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["result"] != "OK" {
		t.Errorf("result = %v", decoded["result"])
	}
}

func TestTableFormatter_Map(t *testing.T) {
	var buf bytes.Buffer
	err := (&TableFormatter{}).Format(&buf, map[string]any{
		"status": "healthy",
		"redis":  "PONG",
	})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "KEY") || !strings.Contains(out, "VALUE") {
		t.Errorf("missing headers: %q", out)
	}
	// Sorted by key: redis before status.
	if strings.Index(out, "redis") > strings.Index(out, "status") {
		t.Errorf("rows not sorted: %q", out)
	}
}

func TestTableFormatter_Slice(t *testing.T) {
	var buf bytes.Buffer
	err := (&TableFormatter{}).Format(&buf, []any{"OK", nil})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "1") || !strings.Contains(out, "OK") {
		t.Errorf("missing first row: %q", out)
	}
	if !strings.Contains(out, "(nil)") {
		t.Errorf("nil not rendered: %q", out)
	}
}
