// Package config defines the server configuration structure.
package config

import "strings"

// Sanitize returns a copy of the config with secrets masked, for logging
// the effective configuration at startup.
func Sanitize(cfg *Config) *Config {
	sanitized := *cfg

	sanitized.Auth.Token = maskSecret(sanitized.Auth.Token)
	if sanitized.Redis.Password != "" {
		sanitized.Redis.Password = maskSecret(sanitized.Redis.Password)
	}
	if sanitized.Sentinel.Password != "" {
		sanitized.Sentinel.Password = maskSecret(sanitized.Sentinel.Password)
	}

	return &sanitized
}

// maskSecret masks a secret value for safe logging.
func maskSecret(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:2] + strings.Repeat("*", len(s)-4) + s[len(s)-2:]
}
