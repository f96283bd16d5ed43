// Package logger provides structured logging for redisgate.
//
// This package wraps log/slog for structured logging:
//
//   - logger.go: Logger interface, slog handlers, global level control
//   - context.go: Context-aware logging with request IDs
//   - redact.go: Sensitive data redaction
//
// Features:
//
//   - JSON and text output formats
//   - Log level filtering with runtime adjustment
//   - Automatic masking of credential-looking attributes
//   - Context propagation of per-request loggers
package logger
