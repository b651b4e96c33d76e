// Package main provides the CLI for the nlsupper probe script generator.
package main

import (
	"os"

	"github.com/leapstack-labs/nlsupper/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
