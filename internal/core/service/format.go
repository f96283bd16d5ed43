// Package service provides application services for redisgate.
package service

import (
	"github.com/redisgate/redisgate-go/internal/core/domain"
	"github.com/redisgate/redisgate-go/internal/encoding/resp"
)

// Format selects the reply encoding requested by a client.
type Format int

const (
	// FormatPlain embeds the reply in JSON unchanged, beyond flattening
	// a top-level mapping into an alternating key/value array.
	FormatPlain Format = iota

	// FormatBase64 additionally Base64-encodes every string leaf except
	// the literal status "OK".
	FormatBase64

	// FormatRESP2 serializes the whole reply as RESP2 wire text.
	FormatRESP2
)

// String returns the format name used in logs.
func (f Format) String() string {
	switch f {
	case FormatBase64:
		return "base64"
	case FormatRESP2:
		return "resp2"
	default:
		return "plain"
	}
}

// FormatValue renders a store reply for the HTTP response body. A
// top-level mapping is always flattened first, mirroring how the store
// represents field/value replies as arrays over HTTP. The returned value
// is JSON-embeddable: a domain.Value for plain and Base64 forms, a
// string holding the wire text for RESP2.
func FormatValue(v domain.Value, f Format) any {
	v = v.Flatten()
	switch f {
	case FormatRESP2:
		return resp.EncodeValue(v)
	case FormatBase64:
		return v.Base64()
	default:
		return v
	}
}
