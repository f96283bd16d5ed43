// Package handler provides HTTP request handlers for redisgate.
package handler

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/redisgate/redisgate-go/internal/core/domain"
	"github.com/redisgate/redisgate-go/internal/core/service"
	"github.com/redisgate/redisgate-go/internal/telemetry/logger"
)

// Formatting headers. RESP2 is checked before Base64; when both are
// present RESP2 wins. This mirrors the evaluation order of the original
// HTTP surface and is a compatibility detail, not a requirement.
const (
	HeaderEncoding       = "Upstash-Encoding"
	HeaderResponseFormat = "Upstash-Response-Format"

	encodingBase64 = "base64"
	formatRESP2    = "resp2"
)

// tokenParam is the query parameter carrying the bearer token.
const tokenParam = "_token"

// Handler dispatches every request of the main listener. All paths other
// than /health and the batch endpoints execute as a generic command.
type Handler struct {
	svc   *service.ProxyService
	token atomic.Value // string
	log   logger.Logger
}

// New creates the gateway handler. secret is the shared bearer token.
func New(svc *service.ProxyService, secret string) *Handler {
	h := &Handler{
		svc: svc,
		log: logger.Default().With("component", "handler"),
	}
	h.token.Store(secret)
	return h
}

// SetToken replaces the bearer secret, for configuration hot reload.
func (h *Handler) SetToken(secret string) {
	h.token.Store(secret)
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/health" {
		h.handleHealth(w, r)
		return
	}

	if !h.authorized(r) {
		h.writeError(w, http.StatusUnauthorized, domain.ErrUnauthorized.Message)
		return
	}

	if r.Method == http.MethodPost {
		switch r.URL.Path {
		case "/pipeline":
			h.handleBatch(w, r, domain.BatchPipeline)
			return
		case "/multi-exec":
			h.handleBatch(w, r, domain.BatchTransaction)
			return
		}
	}

	h.handleCommand(w, r)
}

// authorized compares the presented bearer token against the configured
// secret in constant time. The token comes from the Authorization header
// or, absent that, the _token query parameter.
func (h *Handler) authorized(r *http.Request) bool {
	presented := ""
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		presented = strings.TrimPrefix(auth, "Bearer ")
	} else {
		presented = r.URL.Query().Get(tokenParam)
	}
	if presented == "" {
		return false
	}

	secret, _ := h.token.Load().(string)
	return subtle.ConstantTimeCompare([]byte(presented), []byte(secret)) == 1
}

// handleCommand executes one generic command derived from the request.
func (h *Handler) handleCommand(w http.ResponseWriter, r *http.Request) {
	cmd, err := buildCommand(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, domain.UserMessage(err))
		return
	}

	v, err := h.svc.Execute(r.Context(), cmd)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, domain.UserMessage(err))
		return
	}

	h.writeJSON(w, http.StatusOK, resultBody{Result: service.FormatValue(v, formatFrom(r))})
}

// handleHealth pings the store without requiring auth.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ping, err := h.svc.Health(r.Context())
	if err != nil {
		h.log.Warn("health check failed", "error", err)
		h.writeError(w, http.StatusServiceUnavailable, domain.UserMessage(err))
		return
	}

	h.writeJSON(w, http.StatusOK, healthBody{
		Status: "healthy",
		Redis:  ping.Text(),
	})
}

// formatFrom selects the reply encoding from request headers.
func formatFrom(r *http.Request) service.Format {
	if strings.EqualFold(r.Header.Get(HeaderResponseFormat), formatRESP2) {
		return service.FormatRESP2
	}
	if strings.EqualFold(r.Header.Get(HeaderEncoding), encodingBase64) {
		return service.FormatBase64
	}
	return service.FormatPlain
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Error("failed to encode response", "error", err)
	}
}

// writeError writes the minimal error body of the public contract. The
// message never carries stack traces or internal identifiers.
func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, errorBody{Error: message})
}
