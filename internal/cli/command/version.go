// Package command provides CLI command definitions for redisgate-cli.
package command

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/redisgate/redisgate-go/internal/infra/buildinfo"
)

// VersionCommand returns the version subcommand.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show version information",
		Action: func(c *cli.Context) error {
			info := buildinfo.Get()
			return formatterFrom(c).Format(os.Stdout, map[string]any{
				"version":    info.Version,
				"commit":     info.Commit,
				"build_time": info.BuildTime,
				"go_version": info.GoVersion,
			})
		},
	}
}
