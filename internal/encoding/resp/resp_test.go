package resp

import (
	"testing"

	"github.com/redisgate/redisgate-go/internal/core/domain"
)

func TestEncodeValue(t *testing.T) {
	tests := []struct {
		name     string
		value    domain.Value
		expected string
	}{
		{
			name:     "null",
			value:    domain.Null(),
			expected: "$-1\r\n",
		},
		{
			name:     "true",
			value:    domain.BoolValue(true),
			expected: ":1\r\n",
		},
		{
			name:     "false",
			value:    domain.BoolValue(false),
			expected: ":0\r\n",
		},
		{
			name:     "integer",
			value:    domain.IntValue(123),
			expected: ":123\r\n",
		},
		{
			name:     "negative integer",
			value:    domain.IntValue(-42),
			expected: ":-42\r\n",
		},
		{
			name:     "OK status",
			value:    domain.StringValue("OK"),
			expected: "+OK\r\n",
		},
		{
			name:     "bulk string",
			value:    domain.StringValue("Hello"),
			expected: "$5\r\nHello\r\n",
		},
		{
			name:     "empty bulk string",
			value:    domain.StringValue(""),
			expected: "$0\r\n\r\n",
		},
		{
			name:     "bulk length counts bytes not runes",
			value:    domain.StringValue("héllo"),
			expected: "$6\r\nhéllo\r\n",
		},
		{
			name:     "raw bytes",
			value:    domain.BytesValue([]byte("abc")),
			expected: "$3\r\nabc\r\n",
		},
		{
			name:     "error value",
			value:    domain.ErrorValue("wrong number of arguments"),
			expected: "-ERR wrong number of arguments\r\n",
		},
		{
			name:     "string array",
			value:    domain.ArrayValue(domain.StringValue("Hello"), domain.StringValue("World")),
			expected: "*2\r\n$5\r\nHello\r\n$5\r\nWorld\r\n",
		},
		{
			name:     "empty array",
			value:    domain.ArrayValue(),
			expected: "*0\r\n",
		},
		{
			name: "mixed array",
			value: domain.ArrayValue(
				domain.Null(),
				domain.IntValue(7),
				domain.StringValue("OK"),
			),
			expected: "*3\r\n$-1\r\n:7\r\n+OK\r\n",
		},
		{
			name: "nested array",
			value: domain.ArrayValue(
				domain.ArrayValue(domain.StringValue("a")),
				domain.StringValue("b"),
			),
			expected: "*2\r\n*1\r\n$1\r\na\r\n$1\r\nb\r\n",
		},
		{
			name: "mapping flattens to alternating array",
			value: domain.MapValue(
				domain.MapEntry{Key: domain.StringValue("field"), Value: domain.StringValue("value")},
			),
			expected: "*2\r\n$5\r\nfield\r\n$5\r\nvalue\r\n",
		},
		{
			name:     "double renders as bulk string",
			value:    domain.FloatValue(1.5),
			expected: "$3\r\n1.5\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodeValue(tt.value); got != tt.expected {
				t.Errorf("EncodeValue() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAppendBulk_NilIsNull(t *testing.T) {
	if got := string(AppendBulk(nil, nil)); got != "$-1\r\n" {
		t.Errorf("AppendBulk(nil) = %q, want %q", got, "$-1\r\n")
	}
}

func TestAppendHelpers(t *testing.T) {
	tests := []struct {
		name     string
		got      []byte
		expected string
	}{
		{"simple string", AppendSimpleString(nil, "PONG"), "+PONG\r\n"},
		{"error", AppendError(nil, "ERR oops"), "-ERR oops\r\n"},
		{"integer", AppendInteger(nil, 99), ":99\r\n"},
		{"null bulk", AppendNullBulk(nil), "$-1\r\n"},
		{"bulk", AppendBulk(nil, []byte("hi")), "$2\r\nhi\r\n"},
		{"bulk string", AppendBulkString(nil, "hi"), "$2\r\nhi\r\n"},
		{"array header", AppendArrayHeader(nil, 3), "*3\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if string(tt.got) != tt.expected {
				t.Errorf("got %q, want %q", tt.got, tt.expected)
			}
		})
	}
}

func TestAppendChaining(t *testing.T) {
	// Encoders append to the buffer they are handed.
	b := AppendArrayHeader(nil, 2)
	b = AppendBulkString(b, "one")
	b = AppendInteger(b, 2)

	want := "*2\r\n$3\r\none\r\n:2\r\n"
	if string(b) != want {
		t.Errorf("chained append = %q, want %q", b, want)
	}
}
