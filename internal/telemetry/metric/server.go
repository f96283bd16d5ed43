// Package metric provides Prometheus metrics for redisgate.
package metric

import (
	"context"
	"net/http"
	"time"
)

// Server serves the metrics registry on its own listener.
type Server struct {
	httpServer *http.Server
}

// NewServer creates a metrics server bound to addr.
func NewServer(addr string, reg *Registry) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", reg.Handler())

	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// ListenAndServe starts the metrics server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the metrics server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
