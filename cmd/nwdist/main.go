// Package main provides the entry point for the nwdist CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/li-maxime/Needleman-Wunsch-algorithm/cmd/nwdist/commands"
)

func main() {
	rootCmd := commands.NewDistCommand()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
