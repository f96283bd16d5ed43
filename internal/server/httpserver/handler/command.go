// Package handler provides HTTP request handlers for redisgate.
package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/redisgate/redisgate-go/internal/core/domain"
)

// buildCommand maps one HTTP request onto a store command. A flat JSON
// array body always wins over path segments; the path is consulted only
// when the body is absent, blank, or not an array. Query parameters other
// than _token append as trailing arguments in their original order.
func buildCommand(r *http.Request) (domain.Command, error) {
	queryArgs := parseQueryArgs(r.URL.RawQuery)

	if bodyBearing(r.Method) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			// A failed body read degrades to the path fallback.
			body = nil
		}
		if len(bytes.TrimSpace(body)) > 0 {
			elems, parsed, err := parseArrayBody(body)
			if err != nil {
				return domain.Command{}, err
			}
			if parsed {
				cmd, err := commandFromArray(elems)
				if err != nil {
					return domain.Command{}, err
				}
				cmd.Args = append(cmd.Args, queryArgs...)
				return cmd, nil
			}
		}
	}

	return commandFromPath(r.URL.Path, queryArgs)
}

// bodyBearing reports whether the method carries a request body.
func bodyBearing(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	default:
		return false
	}
}

// parseArrayBody decodes a non-blank body. A body that is not valid JSON
// is a fatal request error; valid JSON that is not an array reports
// parsed=false so the caller falls back to the path.
func parseArrayBody(body []byte) (elems []any, parsed bool, err error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, false, domain.ErrBodyNotJSON
	}

	arr, ok := v.([]any)
	if !ok {
		return nil, false, nil
	}
	return arr, true, nil
}

// commandFromArray validates a flat command array. An array whose first
// element is itself an array is batch input sent to the wrong endpoint.
func commandFromArray(elems []any) (domain.Command, error) {
	if len(elems) > 0 {
		if _, nested := elems[0].([]any); nested {
			return domain.Command{}, domain.ErrBatchToSingle
		}
	}
	return domain.ParseCommandArray(elems)
}

// commandFromPath derives the command from URL path segments.
func commandFromPath(path string, queryArgs []string) (domain.Command, error) {
	segments := make([]string, 0, 4)
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) == 0 {
		return domain.Command{}, domain.ErrNoCommand
	}

	args := make([]string, 0, len(segments)-1+len(queryArgs))
	args = append(args, segments[1:]...)
	args = append(args, queryArgs...)
	return domain.Command{Name: segments[0], Args: args}, nil
}

// parseQueryArgs flattens the query string into trailing arguments,
// preserving the original pair order. url.Values is a map and loses that
// order, so the raw string is walked instead. A bare key contributes one
// argument; key=value contributes two. The _token parameter is skipped.
func parseQueryArgs(rawQuery string) []string {
	if rawQuery == "" {
		return nil
	}

	var args []string
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawVal, hasVal := strings.Cut(pair, "=")

		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			key = rawKey
		}
		if key == tokenParam || key == "" {
			continue
		}

		if !hasVal {
			args = append(args, key)
			continue
		}
		val, err := url.QueryUnescape(rawVal)
		if err != nil {
			val = rawVal
		}
		args = append(args, key, val)
	}
	return args
}
