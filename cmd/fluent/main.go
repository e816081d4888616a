package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/LerianStudio/lib-fluent/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)

	switch {
	case err == nil:
	case errors.Is(err, cli.ErrAssertionFailed):
		stop()
		os.Exit(1)
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(2)
	}
}
