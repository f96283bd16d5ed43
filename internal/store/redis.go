package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/redisgate/redisgate-go/internal/core/domain"
	"github.com/redisgate/redisgate-go/internal/telemetry/logger"
)

// Client is the go-redis backed Store implementation. One Client serves
// all in-flight requests; go-redis pools and serializes connections
// internally.
type Client struct {
	rdb            *redis.Client
	autoPipelining bool
	log            logger.Logger
}

// New builds a store client from opts. Sentinel topology is selected when
// SentinelAddrs is non-empty; every sentinel entry is validated before any
// connection is attempted. Connections themselves are established lazily
// by go-redis on first command.
func New(opts Options) (*Client, error) {
	log := logger.Default().With("component", "store")

	c := &Client{
		autoPipelining: opts.AutoPipelining == "true",
		log:            log,
	}

	db := parseDatabase(opts.Database)

	if opts.SentinelAddrs != "" {
		addrs, err := ParseSentinelAddrs(opts.SentinelAddrs)
		if err != nil {
			return nil, err
		}
		master := opts.MasterName
		if master == "" {
			master = DefaultMasterName
		}
		c.rdb = redis.NewFailoverClient(&redis.FailoverOptions{
			MasterName:       master,
			SentinelAddrs:    addrs,
			Password:         opts.Password,
			SentinelPassword: opts.SentinelPassword,
			DB:               db,
		})
		log.Info("store client configured",
			"topology", "sentinel",
			"sentinels", len(addrs),
			"master", master,
			"db", db,
			"autopipelining", c.autoPipelining,
		)
		return c, nil
	}

	host := opts.Host
	if host == "" {
		host = DefaultHost
	}
	port := opts.Port
	if port == 0 {
		port = DefaultPort
	}
	addr := fmt.Sprintf("%s:%d", host, port)

	c.rdb = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: opts.Password,
		DB:       db,
	})
	log.Info("store client configured",
		"topology", "direct",
		"addr", addr,
		"db", db,
		"autopipelining", c.autoPipelining,
	)
	return c, nil
}

// AutoPipelining reports whether the auto-pipelining setting was enabled.
// go-redis batches explicitly through Pipeline, so the flag is carried for
// configuration compatibility and surfaced in logs only.
func (c *Client) AutoPipelining() bool {
	return c.autoPipelining
}

// Do executes one command and converts the reply. A nil reply converts to
// the null value, not an error.
func (c *Client) Do(ctx context.Context, cmd domain.Command) (domain.Value, error) {
	res, err := c.rdb.Do(ctx, cmd.Argv()...).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Null(), nil
		}
		return domain.Value{}, err
	}
	return FromReply(res), nil
}

// DoBatch queues every command in order into one pipeline or transaction
// and executes a single round trip. Per-command failures surface inside
// the result slice; only a batch that produced no usable results at all
// returns an error.
func (c *Client) DoBatch(ctx context.Context, batch domain.Batch) ([]domain.CommandResult, error) {
	var pipe redis.Pipeliner
	switch batch.Mode {
	case domain.BatchTransaction:
		pipe = c.rdb.TxPipeline()
	default:
		pipe = c.rdb.Pipeline()
	}

	cmds := make([]*redis.Cmd, len(batch.Commands))
	for i, cmd := range batch.Commands {
		cmds[i] = pipe.Do(ctx, cmd.Argv()...)
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		if fatal := batchFatal(err); fatal {
			c.log.Warn("batch execution failed",
				"mode", batch.Mode.String(),
				"commands", len(batch.Commands),
				"error", err,
			)
			if batch.Mode == domain.BatchTransaction {
				return nil, domain.ErrTransactionFailed.WithCause(err)
			}
			return nil, domain.ErrPipelineFailed.WithCause(err)
		}
	}

	out := make([]domain.CommandResult, len(cmds))
	for i, cmd := range cmds {
		res, err := cmd.Result()
		switch {
		case err == nil:
			out[i] = domain.CommandResult{Value: FromReply(res)}
		case errors.Is(err, redis.Nil):
			out[i] = domain.CommandResult{Value: domain.Null()}
		default:
			out[i] = domain.CommandResult{Err: err.Error()}
		}
	}
	return out, nil
}

// batchFatal reports whether an Exec error invalidates the whole batch.
// Errors the store itself replied with are per-command results; anything
// else (dial, timeout, aborted transaction) means no usable results exist.
func batchFatal(err error) bool {
	if errors.Is(err, redis.TxFailedErr) {
		return true
	}
	var re redis.Error
	return !errors.As(err, &re)
}

// PoolStats is a snapshot of the go-redis connection pool, exposed in a
// neutral shape for telemetry.
type PoolStats struct {
	Hits       uint32
	Misses     uint32
	Timeouts   uint32
	TotalConns uint32
	IdleConns  uint32
	StaleConns uint32
}

// PoolStats returns current connection pool statistics.
func (c *Client) PoolStats() PoolStats {
	s := c.rdb.PoolStats()
	return PoolStats{
		Hits:       s.Hits,
		Misses:     s.Misses,
		Timeouts:   s.Timeouts,
		TotalConns: s.TotalConns,
		IdleConns:  s.IdleConns,
		StaleConns: s.StaleConns,
	}
}

// Ping checks store connectivity.
func (c *Client) Ping(ctx context.Context) (domain.Value, error) {
	res, err := c.rdb.Ping(ctx).Result()
	if err != nil {
		return domain.Value{}, domain.ErrStoreUnavailable.WithCause(err)
	}
	return domain.StringValue(res), nil
}

// Close releases the connection pool.
func (c *Client) Close() error {
	return c.rdb.Close()
}
