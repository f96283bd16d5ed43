// Package command provides CLI command definitions for redisgate-cli.
package command

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"
)

// ExecCommand returns the single-command subcommand.
func ExecCommand() *cli.Command {
	return &cli.Command{
		Name:      "cmd",
		Aliases:   []string{"exec"},
		Usage:     "Run a single command",
		ArgsUsage: "COMMAND [ARG...]",
		Action:    runExec,
	}
}

func runExec(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("no command provided")
	}

	args := make([]any, 0, c.NArg())
	for _, a := range c.Args().Slice() {
		args = append(args, a)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := clientFrom(c).Command(ctx, args)
	if err != nil {
		return err
	}

	return formatterFrom(c).Format(os.Stdout, result)
}
