package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"timeline-tracker/internal/cli"
	"timeline-tracker/internal/config"
)

func main() {
	// A local .env is optional; environment variables win when both exist.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	root := cli.NewRootCommand(cfg)
	defer root.Close()

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		root.Close()
		os.Exit(1)
	}
}
