// Package config defines the typed configuration of redisgate-server:
// the HTTP listener, the auth secret, the direct or sentinel store
// topology, and logging. Values load through internal/infra/confloader
// with defaults overridden by a YAML file and REDISGATE_ environment
// variables.
package config
