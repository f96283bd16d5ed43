// Package service provides application services for redisgate.
//
// ProxyService is the execution layer between the HTTP surface and the
// backing store: it validates commands, relays them through the shared
// store client, and hands replies to the formatter.
package service

import (
	"context"

	"github.com/redisgate/redisgate-go/internal/core/domain"
	"github.com/redisgate/redisgate-go/internal/store"
	"github.com/redisgate/redisgate-go/internal/telemetry/logger"
	"github.com/redisgate/redisgate-go/internal/telemetry/metric"
)

// ProxyService relays commands to the backing store.
type ProxyService struct {
	provider *store.Provider
	metrics  *metric.Registry
	log      logger.Logger
}

// ProxyOption configures a ProxyService.
type ProxyOption func(*ProxyService)

// WithMetrics attaches a metrics registry for command accounting.
func WithMetrics(reg *metric.Registry) ProxyOption {
	return func(s *ProxyService) {
		s.metrics = reg
	}
}

// NewProxyService creates a proxy service over the shared store provider.
func NewProxyService(provider *store.Provider, opts ...ProxyOption) *ProxyService {
	s := &ProxyService{
		provider: provider,
		log:      logger.Default().With("component", "proxy"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Execute runs one command against the store and returns its reply.
func (s *ProxyService) Execute(ctx context.Context, cmd domain.Command) (domain.Value, error) {
	if err := cmd.Validate(); err != nil {
		return domain.Value{}, err
	}

	st, err := s.provider.Get()
	if err != nil {
		return domain.Value{}, err
	}

	v, err := st.Do(ctx, cmd)
	s.observe("single", 1, err != nil)
	if err != nil {
		s.log.Warn("command failed",
			"command", cmd.Name,
			"error", err,
		)
		return domain.Value{}, err
	}
	return v, nil
}

// ExecuteBatch parses raw command arrays into a batch and executes it as
// one round trip. A batch-level failure returns an error; per-command
// failures surface inside the result slice. An empty batch is valid and
// returns an empty slice without touching the store.
func (s *ProxyService) ExecuteBatch(ctx context.Context, raw [][]any, mode domain.BatchMode) ([]domain.CommandResult, error) {
	batch, err := ParseBatch(raw, mode)
	if err != nil {
		return nil, err
	}
	if len(batch.Commands) == 0 {
		return []domain.CommandResult{}, nil
	}

	st, err := s.provider.Get()
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.BatchSize.Observe(float64(len(batch.Commands)))
	}

	results, err := st.DoBatch(ctx, batch)
	s.observe(mode.String(), len(batch.Commands), err != nil)
	if err != nil {
		s.log.Warn("batch failed",
			"mode", mode.String(),
			"commands", len(batch.Commands),
			"error", err,
		)
		return nil, err
	}
	return results, nil
}

// Health pings the store and returns the reply.
func (s *ProxyService) Health(ctx context.Context) (domain.Value, error) {
	st, err := s.provider.Get()
	if err != nil {
		return domain.Value{}, err
	}
	return st.Ping(ctx)
}

func (s *ProxyService) observe(mode string, count int, failed bool) {
	if s.metrics != nil {
		s.metrics.ObserveCommands(mode, count, failed)
	}
}

// ParseBatch validates raw command arrays and assembles a Batch. Every
// element must be a non-empty array whose first item is the command name.
func ParseBatch(raw [][]any, mode domain.BatchMode) (domain.Batch, error) {
	commands := make([]domain.Command, 0, len(raw))
	for _, elems := range raw {
		cmd, err := domain.ParseCommandArray(elems)
		if err != nil {
			return domain.Batch{}, err
		}
		commands = append(commands, cmd)
	}
	return domain.Batch{Commands: commands, Mode: mode}, nil
}
