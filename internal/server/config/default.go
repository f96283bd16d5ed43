// Package config defines the server configuration structure.
package config

// Default configuration values.
const (
	DefaultPort = 3000

	// DefaultAuthToken is a placeholder and must be overridden before
	// the gateway serves production traffic.
	DefaultAuthToken = "change-me"

	DefaultRedisHost     = "localhost"
	DefaultRedisPort     = 6379
	DefaultRedisDatabase = "0"

	DefaultSentinelMaster = "mymaster"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Default returns the default server configuration.
func Default() *Config {
	return &Config{
		Server: ServerSection{
			Port: DefaultPort,
		},
		Auth: AuthSection{
			Token: DefaultAuthToken,
		},
		Redis: RedisSection{
			Host:     DefaultRedisHost,
			Port:     DefaultRedisPort,
			Database: DefaultRedisDatabase,
		},
		Sentinel: SentinelSection{
			Master: DefaultSentinelMaster,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
