// Package command provides CLI command definitions for redisgate-cli.
package command

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/redisgate/redisgate-go/internal/cli/connection"
	"github.com/redisgate/redisgate-go/internal/cli/output"
	"github.com/redisgate/redisgate-go/internal/infra/buildinfo"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "redisgate-cli",
		Usage:   "Command-line client for the redisgate HTTP gateway",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			ExecCommand(),
			PipelineCommand(),
			MultiExecCommand(),
			HealthCommand(),
			VersionCommand(),
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "server",
			Aliases: []string{"s"},
			Usage:   "Gateway address (e.g., localhost:3000)",
			EnvVars: []string{"REDISGATE_SERVER"},
			Value:   "localhost:3000",
		},
		&cli.StringFlag{
			Name:    "token",
			Aliases: []string{"t"},
			Usage:   "Bearer token for authentication",
			EnvVars: []string{"REDISGATE_TOKEN"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: raw, json, table",
			Value:   "raw",
		},
	}
}

// clientFrom builds a gateway client from the global flags.
func clientFrom(c *cli.Context) *connection.Client {
	return connection.NewClient(c.String("server"), c.String("token"))
}

// formatterFrom builds an output formatter from the global flags.
func formatterFrom(c *cli.Context) output.Formatter {
	return output.NewFormatter(output.Format(c.String("output")))
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
