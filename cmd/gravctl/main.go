// Package main is the entry point for the gravctl CLI.
package main

import (
	"os"

	"github.com/gravnet/gravctl/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
