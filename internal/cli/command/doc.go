// Package command provides CLI command definitions for redisgate-cli.
//
// It uses urfave/cli/v2 for command parsing. Every subcommand talks to
// a running gateway over its HTTP API.
package command
