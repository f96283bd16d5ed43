// Package store connects the gateway to the backing key-value store.
//
// It wraps go-redis behind the narrow Store interface the rest of the
// gateway consumes, converts raw replies into domain values, and owns the
// process-wide client lifecycle through Provider. Two topologies are
// supported: a direct host:port connection, or sentinel-based discovery
// of the current primary.
package store
