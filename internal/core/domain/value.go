// Package domain defines the core domain models for redisgate.
package domain

import (
	"encoding/base64"
	"encoding/json"
	"strconv"
)

// StatusOK is the simple-status reply the store uses for successful writes.
// It is exempt from Base64 encoding and serializes as a RESP2 simple string.
const StatusOK = "OK"

// Kind discriminates the concrete shape held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindBytes
	KindError
	KindArray
	KindMap
)

// String returns the kind name used in logs and test failures.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindError:
		return "error"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Value is a tagged union over the reply shapes the store can produce.
// Only the field selected by Kind is meaningful. Every transform over
// Value is total: each kind has defined behavior in each transform.
type Value struct {
	Kind  Kind
	Bool  bool
	Int   int64
	Float float64
	Str   string // KindString payload or KindError message
	Bytes []byte
	Array []Value
	Map   []MapEntry
}

// MapEntry is one key/value pair of a mapping reply. Entry order is the
// order the store produced.
type MapEntry struct {
	Key   Value
	Value Value
}

// Null returns the null Value.
func Null() Value { return Value{Kind: KindNull} }

// BoolValue wraps a boolean reply.
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// IntValue wraps an integer reply.
func IntValue(i int64) Value { return Value{Kind: KindInt, Int: i} }

// FloatValue wraps a double reply.
func FloatValue(f float64) Value { return Value{Kind: KindFloat, Float: f} }

// StringValue wraps a string or bulk-string reply.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// BytesValue wraps a raw byte-buffer reply.
func BytesValue(b []byte) Value { return Value{Kind: KindBytes, Bytes: b} }

// ErrorValue wraps an error reply embedded inside a result value, as the
// store produces inside EXEC reply arrays.
func ErrorValue(msg string) Value { return Value{Kind: KindError, Str: msg} }

// ArrayValue wraps an ordered sequence of values.
func ArrayValue(elems ...Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{Kind: KindArray, Array: elems}
}

// MapValue wraps an ordered key/value mapping.
func MapValue(entries ...MapEntry) Value {
	if entries == nil {
		entries = []MapEntry{}
	}
	return Value{Kind: KindMap, Map: entries}
}

// IsNull reports whether the value is the null reply.
func (v Value) IsNull() bool { return v.Kind == KindNull }

// MarshalJSON renders the plain JSON-embeddable form of the value.
// Mappings become JSON objects keyed by the textual form of each key;
// raw bytes render as text.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindNull:
		return []byte("null"), nil
	case KindBool:
		return json.Marshal(v.Bool)
	case KindInt:
		return strconv.AppendInt(nil, v.Int, 10), nil
	case KindFloat:
		return json.Marshal(v.Float)
	case KindString, KindError:
		return json.Marshal(v.Str)
	case KindBytes:
		return json.Marshal(string(v.Bytes))
	case KindArray:
		if len(v.Array) == 0 {
			return []byte("[]"), nil
		}
		return json.Marshal([]Value(v.Array))
	case KindMap:
		buf := []byte{'{'}
		for i, e := range v.Map {
			if i > 0 {
				buf = append(buf, ',')
			}
			key, err := json.Marshal(e.Key.Text())
			if err != nil {
				return nil, err
			}
			val, err := json.Marshal(e.Value)
			if err != nil {
				return nil, err
			}
			buf = append(buf, key...)
			buf = append(buf, ':')
			buf = append(buf, val...)
		}
		return append(buf, '}'), nil
	default:
		return []byte("null"), nil
	}
}

// Text returns a plain-text rendering of the value, used for mapping keys
// and CLI display. Composite values render as compact JSON.
func (v Value) Text() string {
	switch v.Kind {
	case KindNull:
		return ""
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindString, KindError:
		return v.Str
	case KindBytes:
		return string(v.Bytes)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// Flatten converts a top-level mapping into the alternating key/value
// array form used on the HTTP surface. Any other kind is returned
// unchanged; nested mappings are not touched.
func (v Value) Flatten() Value {
	if v.Kind != KindMap {
		return v
	}
	out := make([]Value, 0, len(v.Map)*2)
	for _, e := range v.Map {
		out = append(out, e.Key, e.Value)
	}
	return Value{Kind: KindArray, Array: out}
}

// Base64 returns a copy with every string leaf except the literal "OK"
// replaced by the Base64 encoding of its UTF-8 bytes. Arrays and mappings
// recurse over every element, key, and value; other kinds pass through
// unchanged.
func (v Value) Base64() Value {
	switch v.Kind {
	case KindString:
		if v.Str == StatusOK {
			return v
		}
		return StringValue(base64.StdEncoding.EncodeToString([]byte(v.Str)))
	case KindArray:
		out := make([]Value, len(v.Array))
		for i, e := range v.Array {
			out[i] = e.Base64()
		}
		return Value{Kind: KindArray, Array: out}
	case KindMap:
		out := make([]MapEntry, len(v.Map))
		for i, e := range v.Map {
			out[i] = MapEntry{Key: e.Key.Base64(), Value: e.Value.Base64()}
		}
		return Value{Kind: KindMap, Map: out}
	default:
		return v
	}
}
