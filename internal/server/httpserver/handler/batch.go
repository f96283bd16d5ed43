// Package handler provides HTTP request handlers for redisgate.
package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/redisgate/redisgate-go/internal/core/domain"
	"github.com/redisgate/redisgate-go/internal/core/service"
)

// handleBatch serves POST /pipeline and POST /multi-exec. The body must
// be a JSON array of command arrays; each result maps positionally to
// its command as {"result": ...} or {"error": ...}.
func (h *Handler) handleBatch(w http.ResponseWriter, r *http.Request, mode domain.BatchMode) {
	raw, err := parseBatchBody(r.Body)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, domain.UserMessage(err))
		return
	}

	results, err := h.svc.ExecuteBatch(r.Context(), raw, mode)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, domain.UserMessage(err))
		return
	}

	format := formatFrom(r)
	out := make([]any, len(results))
	for i, res := range results {
		if res.Failed() {
			out[i] = errorBody{Error: res.Err}
			continue
		}
		out[i] = resultBody{Result: service.FormatValue(res.Value, format)}
	}

	h.writeJSON(w, http.StatusOK, out)
}

// parseBatchBody decodes the batch request body into raw command arrays.
// Anything other than an array of arrays violates the batch schema.
func parseBatchBody(body io.Reader) ([][]any, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, domain.ErrBatchShape
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, domain.ErrBatchShape
	}

	arr, ok := v.([]any)
	if !ok {
		return nil, domain.ErrBatchShape
	}

	raw := make([][]any, len(arr))
	for i, e := range arr {
		elems, ok := e.([]any)
		if !ok {
			return nil, domain.ErrBatchShape
		}
		raw[i] = elems
	}
	return raw, nil
}
