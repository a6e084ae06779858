package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/apisnap-labs/apisnap/core/cli"
	"github.com/apisnap-labs/apisnap/pkg/logging"
)

const version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := logging.NewLogger(os.Stderr)

	runSnapshot := func(ctx context.Context) error {
		return run(ctx, os.Stdin, os.Stdout, logger)
	}

	root := cli.NewRootCmd(version, runSnapshot)

	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
