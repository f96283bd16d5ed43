// Package command provides CLI command definitions for redisgate-cli.
package command

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/redisgate/redisgate-go/internal/cli/connection"
)

// PipelineCommand returns the pipeline subcommand.
func PipelineCommand() *cli.Command {
	return &cli.Command{
		Name:      "pipeline",
		Usage:     "Run commands as a pipeline",
		ArgsUsage: `'[["SET","k","v"],["GET","k"]]' (or - to read stdin)`,
		Action: func(c *cli.Context) error {
			return runBatch(c, func(ctx context.Context, client *connection.Client, cmds [][]any) ([]connection.BatchResult, error) {
				return client.Pipeline(ctx, cmds)
			})
		},
	}
}

// MultiExecCommand returns the transaction subcommand.
func MultiExecCommand() *cli.Command {
	return &cli.Command{
		Name:      "multi-exec",
		Usage:     "Run commands atomically in a MULTI/EXEC transaction",
		ArgsUsage: `'[["SET","k","v"],["GET","k"]]' (or - to read stdin)`,
		Action: func(c *cli.Context) error {
			return runBatch(c, func(ctx context.Context, client *connection.Client, cmds [][]any) ([]connection.BatchResult, error) {
				return client.MultiExec(ctx, cmds)
			})
		},
	}
}

type batchFunc func(context.Context, *connection.Client, [][]any) ([]connection.BatchResult, error)

func runBatch(c *cli.Context, run batchFunc) error {
	commands, err := readCommands(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	results, err := run(ctx, clientFrom(c), commands)
	if err != nil {
		return err
	}

	// Flatten into plain values so every formatter can render them.
	out := make([]any, len(results))
	for i, r := range results {
		if r.Error != "" {
			out[i] = fmt.Sprintf("ERR %s", r.Error)
			continue
		}
		out[i] = r.Result
	}

	return formatterFrom(c).Format(os.Stdout, out)
}

// readCommands parses the batch body from the first argument, or from
// stdin when the argument is "-" or absent.
func readCommands(c *cli.Context) ([][]any, error) {
	var raw []byte
	arg := c.Args().First()

	if arg == "" || arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		raw = data
	} else {
		raw = []byte(arg)
	}

	var commands [][]any
	if err := json.Unmarshal(raw, &commands); err != nil {
		return nil, fmt.Errorf("expected a JSON array of command arrays: %w", err)
	}
	if len(commands) == 0 {
		return nil, fmt.Errorf("no commands provided")
	}
	return commands, nil
}
