// Package shutdown provides graceful shutdown for redisgate.
//
// This package handles process termination signals:
//
//   - Signal handling (SIGINT, SIGTERM)
//   - Timeout budget for the whole hook sequence
//   - Named cleanup hook registration, run in reverse order
//   - Shutdown coordination through Done
//
// Usage:
//
//	h := shutdown.NewHandler(30 * time.Second)
//	h.OnShutdown("store", func(ctx context.Context) error { return provider.Close() })
//	h.OnShutdown("listener", srv.Shutdown)
//	err := h.Wait() // blocks until SIGINT/SIGTERM, then runs hooks newest-first
package shutdown
