package main

import (
	"fmt"
	"os"

	"github.com/aerissecure/roadmap/internal/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	rootCmd := cli.NewRootCmd(&cli.App{})
	return rootCmd.Execute()
}
