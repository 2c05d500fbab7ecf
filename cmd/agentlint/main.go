package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/githubnext/agentlint/pkg/cli"
	"github.com/githubnext/agentlint/pkg/console"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		// Validation failures have already been reported in full.
		if !errors.Is(err, cli.ErrValidationFailed) {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(fmt.Sprintf("Error: %s", err)))
		}
		os.Exit(1)
	}
}
