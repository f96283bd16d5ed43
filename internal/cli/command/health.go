// Package command provides CLI command definitions for redisgate-cli.
package command

import (
	"context"
	"os"
	"time"

	"github.com/urfave/cli/v2"
)

// HealthCommand returns the health subcommand.
func HealthCommand() *cli.Command {
	return &cli.Command{
		Name:   "health",
		Usage:  "Check gateway and store health",
		Action: runHealth,
	}
}

func runHealth(c *cli.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	body, err := clientFrom(c).Health(ctx)
	if err != nil {
		return err
	}

	return formatterFrom(c).Format(os.Stdout, body)
}
