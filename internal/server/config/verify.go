// Package config defines the server configuration structure.
package config

import (
	"errors"
	"fmt"

	"github.com/redisgate/redisgate-go/internal/store"
)

// Verify validates the configuration. Verification failures abort
// startup; the gateway must not serve traffic on a bad configuration.
func Verify(cfg *Config) error {
	if err := verifyServer(&cfg.Server); err != nil {
		return err
	}
	if err := verifyAuth(&cfg.Auth); err != nil {
		return err
	}
	if err := verifyStore(cfg); err != nil {
		return err
	}
	return verifyLog(&cfg.Log)
}

func verifyServer(cfg *ServerSection) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", cfg.Port)
	}
	if cfg.RateLimit < 0 {
		return errors.New("server.ratelimit must not be negative")
	}
	return nil
}

func verifyAuth(cfg *AuthSection) error {
	if cfg.Token == "" {
		return errors.New("auth.token must not be empty")
	}
	return nil
}

func verifyStore(cfg *Config) error {
	if cfg.Sentinel.Addrs != "" {
		// Every entry must split into a non-empty host and numeric port;
		// a malformed entry is named in the error.
		if _, err := store.ParseSentinelAddrs(cfg.Sentinel.Addrs); err != nil {
			return err
		}
		return nil
	}
	if cfg.Redis.Port < 1 || cfg.Redis.Port > 65535 {
		return fmt.Errorf("redis.port %d out of range", cfg.Redis.Port)
	}
	return nil
}

func verifyLog(cfg *LogSection) error {
	switch cfg.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", cfg.Level)
	}
	switch cfg.Format {
	case "json", "text":
		return nil
	default:
		return fmt.Errorf("log.format %q is not one of json, text", cfg.Format)
	}
}
