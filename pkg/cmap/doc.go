// Package cmap provides a concurrent map for redisgate.
//
// The map is string-keyed and sharded by murmur3 hash, with a per-shard
// RWMutex so concurrent request handlers contend only within a shard.
// The gateway uses it as the registry behind per-client rate limiters.
//
// Usage:
//
//	m := cmap.New[*rate.Limiter]()
//	lim, _ := m.GetOrSet(clientIP, rate.NewLimiter(10, 20))
package cmap
