// Package output provides output formatting for redisgate-cli.
package output
