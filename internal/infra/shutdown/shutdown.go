// Package shutdown coordinates graceful teardown of gateway resources.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/redisgate/redisgate-go/internal/telemetry/logger"
)

// Hook releases one resource during shutdown.
type Hook func(context.Context) error

// Handler waits for termination signals and runs registered hooks in
// reverse order of registration, so dependents stop before the resources
// they depend on (listener before store client).
type Handler struct {
	timeout   time.Duration
	mu        sync.Mutex
	names     []string
	hooks     []Hook
	done      chan struct{}
	closeOnce sync.Once
	log       logger.Logger
}

// NewHandler creates a shutdown handler. The timeout bounds the whole
// hook sequence, not each hook individually.
func NewHandler(timeout time.Duration) *Handler {
	return &Handler{
		timeout: timeout,
		done:    make(chan struct{}),
		log:     logger.Default().With("component", "shutdown"),
	}
}

// OnShutdown registers a named hook. Hooks are called in reverse order
// of registration.
func (h *Handler) OnShutdown(name string, hook Hook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.names = append(h.names, name)
	h.hooks = append(h.hooks, hook)
}

// Wait blocks until SIGINT or SIGTERM, then executes the hooks.
// The last hook error is returned after every hook has run.
func (h *Handler) Wait() error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	signal.Stop(sigCh)

	h.log.Info("shutdown signal received", "signal", sig.String())
	return h.run()
}

// Trigger executes the hooks without waiting for a signal, for fatal
// startup failures after hooks were already registered.
func (h *Handler) Trigger() error {
	return h.run()
}

func (h *Handler) run() error {
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	h.mu.Lock()
	names := make([]string, len(h.names))
	copy(names, h.names)
	hooks := make([]Hook, len(h.hooks))
	copy(hooks, h.hooks)
	h.mu.Unlock()

	var lastErr error
	for i := len(hooks) - 1; i >= 0; i-- {
		if err := hooks[i](ctx); err != nil {
			h.log.Error("shutdown hook failed", "hook", names[i], "error", err)
			lastErr = err
			continue
		}
		h.log.Debug("shutdown hook finished", "hook", names[i])
	}

	h.closeOnce.Do(func() { close(h.done) })
	return lastErr
}

// Done returns a channel that closes when shutdown is complete.
func (h *Handler) Done() <-chan struct{} {
	return h.done
}
