// Package main provides the entry point for redisgate-cli.
package main

import (
	"fmt"
	"os"

	"github.com/redisgate/redisgate-go/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
