// Package appshell owns the process boundary: signals, os.Args and os.Exit.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"localign/internal/appcore"
)

// Main runs run under a context canceled by SIGINT/SIGTERM and exits with
// its status.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	// a run cut short by a signal never reports success
	if ctx.Err() != nil && code == appcore.ExitOK {
		code = appcore.ExitCanceled
	}

	stop()
	os.Exit(code)
}
