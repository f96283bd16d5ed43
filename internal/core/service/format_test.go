// Package service provides application services for redisgate.
package service

import (
	"testing"

	"github.com/redisgate/redisgate-go/internal/core/domain"
)

func TestFormatValue_Plain(t *testing.T) {
	v := domain.StringValue("hello")
	got := FormatValue(v, FormatPlain)
	val, ok := got.(domain.Value)
	if !ok || val.Str != "hello" {
		t.Errorf("FormatValue = %v, want unchanged string", got)
	}
}

func TestFormatValue_FlattensMapping(t *testing.T) {
	v := domain.MapValue(
		domain.MapEntry{Key: domain.StringValue("field"), Value: domain.StringValue("value")},
	)

	got := FormatValue(v, FormatPlain).(domain.Value)
	if got.Kind != domain.KindArray || len(got.Array) != 2 {
		t.Fatalf("mapping not flattened: %+v", got)
	}
	if got.Array[0].Str != "field" || got.Array[1].Str != "value" {
		t.Errorf("flattened = %+v", got.Array)
	}
}

func TestFormatValue_RESP2(t *testing.T) {
	tests := []struct {
		name string
		v    domain.Value
		want string
	}{
		{"null", domain.Null(), "$-1\r\n"},
		{"true", domain.BoolValue(true), ":1\r\n"},
		{"integer", domain.IntValue(123), ":123\r\n"},
		{"status", domain.StringValue("OK"), "+OK\r\n"},
		{"string", domain.StringValue("Hello"), "$5\r\nHello\r\n"},
		{
			"array",
			domain.ArrayValue(domain.StringValue("Hello"), domain.StringValue("World")),
			"*2\r\n$5\r\nHello\r\n$5\r\nWorld\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatValue(tt.v, FormatRESP2)
			s, ok := got.(string)
			if !ok {
				t.Fatalf("FormatValue RESP2 returned %T, want string", got)
			}
			if s != tt.want {
				t.Errorf("RESP2 = %q, want %q", s, tt.want)
			}
		})
	}
}

func TestFormatValue_RESP2FlattensMappingFirst(t *testing.T) {
	v := domain.MapValue(
		domain.MapEntry{Key: domain.StringValue("f"), Value: domain.IntValue(1)},
	)
	got := FormatValue(v, FormatRESP2).(string)
	if got != "*2\r\n$1\r\nf\r\n:1\r\n" {
		t.Errorf("RESP2 mapping = %q", got)
	}
}

func TestFormatValue_Base64(t *testing.T) {
	v := domain.ArrayValue(
		domain.StringValue("hello"),
		domain.StringValue("OK"),
		domain.IntValue(5),
	)

	got := FormatValue(v, FormatBase64).(domain.Value)
	if got.Array[0].Str != "aGVsbG8=" {
		t.Errorf("string leaf = %q, want aGVsbG8=", got.Array[0].Str)
	}
	if got.Array[1].Str != "OK" {
		t.Errorf(`literal "OK" must pass through, got %q`, got.Array[1].Str)
	}
	if got.Array[2].Int != 5 {
		t.Errorf("integer leaf changed: %+v", got.Array[2])
	}
}

func TestFormat_String(t *testing.T) {
	tests := []struct {
		f    Format
		want string
	}{
		{FormatPlain, "plain"},
		{FormatBase64, "base64"},
		{FormatRESP2, "resp2"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
