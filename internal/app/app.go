// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"localign/internal/appcore"
	"localign/internal/cli"
	"localign/internal/config"
)

// RunContext executes the localign command line in argv and returns the
// process exit status.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	root := cli.NewRootCommand(config.NewViper(), cli.Handlers{
		Align: func(ctx context.Context, c config.Config, inputs []string) int {
			return appcore.Run(ctx, stdout, stderr, c, inputs)
		},
		Runs: func(ctx context.Context, c config.Config, runID string) int {
			if runID != "" {
				return appcore.ShowRun(ctx, stdout, stderr, c, runID)
			}
			return appcore.ListRuns(ctx, stdout, stderr, c)
		},
	})
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(parent)
	if err == nil {
		return appcore.ExitOK
	}
	var ee *cli.ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
	_, _ = fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", root.Name())
	return appcore.ExitUsage
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
