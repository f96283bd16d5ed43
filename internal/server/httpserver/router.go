// Package httpserver provides the HTTP server for redisgate.
package httpserver

import (
	"net/http"

	"github.com/redisgate/redisgate-go/internal/telemetry/logger"
	"github.com/redisgate/redisgate-go/internal/telemetry/metric"
)

// RouterConfig holds configuration for the request pipeline.
type RouterConfig struct {
	// Handler is the gateway handler serving every route.
	Handler http.Handler

	// Logger for audit and panic logging.
	Logger logger.Logger

	// RateLimit is the per-client-IP budget in requests per second.
	// Zero disables rate limiting.
	RateLimit int

	// Metrics enables request instrumentation when non-nil.
	Metrics *metric.Registry
}

// NewRouter assembles the middleware chain around the gateway handler.
// There is no route table: the handler itself dispatches, because any
// path not claimed by /health or the batch endpoints is a command.
func NewRouter(cfg *RouterConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}

	middlewares := []Middleware{
		Recover(log),
		RequestID(),
	}
	if cfg.Metrics != nil {
		middlewares = append(middlewares, Instrument(cfg.Metrics))
	}
	if cfg.RateLimit > 0 {
		middlewares = append(middlewares, RateLimit(cfg.RateLimit))
	}
	middlewares = append(middlewares, Audit(log))

	return Chain(cfg.Handler, middlewares...)
}
