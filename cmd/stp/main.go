package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"say-to-plan/internal/cli"
	"say-to-plan/internal/config"
)

func main() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Ctrl-C cancels a capture in progress instead of killing mid-write
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	factory := NewRepositoryFactory(getEnvironment())
	root := cli.NewRootCommand(cfg, factory.CreateRepository)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
