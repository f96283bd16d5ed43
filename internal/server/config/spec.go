// Package config defines the server configuration structure.
package config

// Config is the root configuration for redisgate-server.
type Config struct {
	Server   ServerSection   `koanf:"server"`
	Auth     AuthSection     `koanf:"auth"`
	Redis    RedisSection    `koanf:"redis"`
	Sentinel SentinelSection `koanf:"sentinel"`
	Log      LogSection      `koanf:"log"`
}

// ServerSection configures the HTTP listener.
type ServerSection struct {
	// Port is the main listening port.
	Port int `koanf:"port"`

	// RateLimit is the per-client-IP request budget in requests per
	// second. Zero disables rate limiting.
	RateLimit int `koanf:"ratelimit"`

	// Metrics is the listen address of the dedicated metrics server.
	// Empty disables metrics.
	Metrics string `koanf:"metrics"`
}

// AuthSection configures request authentication.
type AuthSection struct {
	// Token is the shared bearer secret. The default is a placeholder
	// and must be overridden in production.
	Token string `koanf:"token"`
}

// RedisSection configures the direct store connection. Database and
// AutoPipelining are strings by contract: an unparseable database index
// selects database 0, and auto-pipelining is enabled only when the
// setting is exactly "true".
type RedisSection struct {
	Host           string `koanf:"host"`
	Port           int    `koanf:"port"`
	Database       string `koanf:"database"`
	Password       string `koanf:"password"`
	AutoPipelining string `koanf:"autopipelining"`
}

// SentinelSection configures the high-availability topology. A non-empty
// Addrs list switches the gateway to sentinel discovery; the master
// password is taken from the redis section.
type SentinelSection struct {
	// Addrs is a comma-separated list of host:port sentinel endpoints.
	Addrs string `koanf:"addrs"`

	// Master is the monitored master-group name.
	Master string `koanf:"master"`

	// Password authenticates against the sentinels themselves.
	Password string `koanf:"password"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}
