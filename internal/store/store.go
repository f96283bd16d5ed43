package store

import (
	"context"
	"net"
	"strconv"
	"strings"

	"github.com/redisgate/redisgate-go/internal/core/domain"
)

// Connection defaults applied when the corresponding setting is absent.
const (
	DefaultHost       = "localhost"
	DefaultPort       = 6379
	DefaultMasterName = "mymaster"
)

// Store is the narrow surface the gateway needs from the backing store.
// Implementations must be safe for concurrent use by in-flight requests.
type Store interface {
	// Do executes one command and returns its reply.
	Do(ctx context.Context, cmd domain.Command) (domain.Value, error)

	// DoBatch queues every command of the batch in order, executes them as
	// one round trip, and returns one result per command in queue order.
	DoBatch(ctx context.Context, batch domain.Batch) ([]domain.CommandResult, error)

	// Ping checks connectivity to the store.
	Ping(ctx context.Context) (domain.Value, error)

	// Close releases the underlying connections.
	Close() error
}

// Options describe how to reach the backing store. A non-empty
// SentinelAddrs list selects the high-availability sentinel topology;
// otherwise Host and Port select a direct connection.
type Options struct {
	Host     string
	Port     int
	Database string // database index; unparseable values select database 0
	Password string

	SentinelAddrs    string // comma-separated host:port entries
	MasterName       string
	SentinelPassword string

	AutoPipelining string // enabled only when exactly "true"
}

// ParseSentinelAddrs splits a comma-separated sentinel list, validating
// that every entry is a non-empty host plus a numeric port. Blank entries
// are skipped; a malformed entry fails with the entry named in the error.
func ParseSentinelAddrs(raw string) ([]string, error) {
	parts := strings.Split(raw, ",")
	addrs := make([]string, 0, len(parts))
	for _, p := range parts {
		entry := strings.TrimSpace(p)
		if entry == "" {
			continue
		}
		host, port, err := net.SplitHostPort(entry)
		if err != nil || host == "" {
			return nil, domain.ErrSentinelEntry.WithDetails(entry)
		}
		if _, err := strconv.Atoi(port); err != nil {
			return nil, domain.ErrSentinelEntry.WithDetails(entry)
		}
		addrs = append(addrs, net.JoinHostPort(host, port))
	}
	return addrs, nil
}

func parseDatabase(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
