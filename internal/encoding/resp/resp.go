package resp

import (
	"strconv"

	"github.com/redisgate/redisgate-go/internal/core/domain"
)

// AppendSimpleString appends "+<s>\r\n".
func AppendSimpleString(b []byte, s string) []byte {
	b = append(b, '+')
	b = append(b, s...)
	return append(b, '\r', '\n')
}

// AppendError appends "-<s>\r\n".
func AppendError(b []byte, s string) []byte {
	b = append(b, '-')
	b = append(b, s...)
	return append(b, '\r', '\n')
}

// AppendInteger appends ":<n>\r\n".
func AppendInteger(b []byte, n int64) []byte {
	b = append(b, ':')
	b = strconv.AppendInt(b, n, 10)
	return append(b, '\r', '\n')
}

// AppendNullBulk appends the null bulk string "$-1\r\n".
func AppendNullBulk(b []byte) []byte {
	return append(b, '$', '-', '1', '\r', '\n')
}

// AppendBulk appends "$<len>\r\n<p>\r\n". A nil buffer appends the null bulk.
func AppendBulk(b []byte, p []byte) []byte {
	if p == nil {
		return AppendNullBulk(b)
	}
	b = append(b, '$')
	b = strconv.AppendInt(b, int64(len(p)), 10)
	b = append(b, '\r', '\n')
	b = append(b, p...)
	return append(b, '\r', '\n')
}

// AppendBulkString appends s as a bulk string. The length prefix counts
// UTF-8 bytes, not runes.
func AppendBulkString(b []byte, s string) []byte {
	b = append(b, '$')
	b = strconv.AppendInt(b, int64(len(s)), 10)
	b = append(b, '\r', '\n')
	b = append(b, s...)
	return append(b, '\r', '\n')
}

// AppendArrayHeader appends "*<n>\r\n".
func AppendArrayHeader(b []byte, n int) []byte {
	b = append(b, '*')
	b = strconv.AppendInt(b, int64(n), 10)
	return append(b, '\r', '\n')
}

// EncodeValue renders v in RESP2 textual form:
//
//   - null renders as the null bulk string
//   - booleans render as the integers 1 and 0
//   - the status string "OK" renders as a simple string, any other string
//     as a bulk string
//   - error values render as "-ERR <message>"
//   - arrays render as a header followed by each element, no separator
//   - mappings flatten to alternating key/value arrays first (RESP2 has
//     no map type)
//   - doubles render as bulk strings of their decimal form
func EncodeValue(v domain.Value) string {
	return string(appendValue(nil, v))
}

func appendValue(b []byte, v domain.Value) []byte {
	switch v.Kind {
	case domain.KindNull:
		return AppendNullBulk(b)
	case domain.KindBool:
		if v.Bool {
			return AppendInteger(b, 1)
		}
		return AppendInteger(b, 0)
	case domain.KindInt:
		return AppendInteger(b, v.Int)
	case domain.KindFloat:
		return AppendBulkString(b, strconv.FormatFloat(v.Float, 'g', -1, 64))
	case domain.KindString:
		if v.Str == domain.StatusOK {
			return AppendSimpleString(b, v.Str)
		}
		return AppendBulkString(b, v.Str)
	case domain.KindBytes:
		return AppendBulk(b, v.Bytes)
	case domain.KindError:
		return AppendError(b, "ERR "+v.Str)
	case domain.KindArray:
		b = AppendArrayHeader(b, len(v.Array))
		for _, e := range v.Array {
			b = appendValue(b, e)
		}
		return b
	case domain.KindMap:
		flat := v.Flatten()
		b = AppendArrayHeader(b, len(flat.Array))
		for _, e := range flat.Array {
			b = appendValue(b, e)
		}
		return b
	default:
		return AppendNullBulk(b)
	}
}
