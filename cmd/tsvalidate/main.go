// Package main is the entry point for tsvalidate, the operator command line
// for checking timesheet files before they are submitted.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"

	"github.com/jsamuelsen11/timesheet-service/internal/adapters/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := cli.NewRoot(afero.NewOsFs()).ExecuteContext(ctx)
	stop()

	if err != nil && !errors.Is(err, cli.ErrFindings) {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	os.Exit(cli.ExitCode(err))
}
