package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-tangra/go-tangra-sysexplorer/internal/cli"
)

func main() {
	// Interactive use: stop sampling on SIGINT / SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr, cli.DefaultDeps())
	stop()
	os.Exit(code)
}
