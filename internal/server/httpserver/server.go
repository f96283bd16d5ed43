// Package httpserver provides the HTTP server for redisgate.
package httpserver

import (
	"context"
	"net/http"
	"time"
)

// Server wraps the standard library HTTP server.
type Server struct {
	httpServer *http.Server
}

// New creates an HTTP server bound to addr. TLS termination is delegated
// to the reverse proxy in front of the gateway.
func New(addr string, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// ListenAndServe starts the server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
