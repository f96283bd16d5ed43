// Package main provides the entry point for redisgate-cli.
//
// redisgate-cli is a command-line client for a running gateway,
// covering single commands, pipelines, transactions, and health checks.
package main
