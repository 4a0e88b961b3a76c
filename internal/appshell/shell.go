// Package appshell wires a RunContext-style entry point to the process:
// signal-aware context, real stdio, exit status.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Main runs run with a context cancelled on SIGINT/SIGTERM and exits with
// its status. A run interrupted by a signal never exits 0.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if ctx.Err() != nil && code == 0 {
		code = 130
	}

	stop()
	os.Exit(code)
}
