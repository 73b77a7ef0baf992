package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/m0370/pedigree-drawer/internal/cli"
	pkgerrors "github.com/m0370/pedigree-drawer/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	os.Exit(run(ctx))
}

// run executes the CLI and maps errors to exit codes: 0 on success, 1 for a
// rejected record or unusable input, 2 for an internal render failure, and
// 130 on interrupt (standard shell convention for SIGINT).
func run(ctx context.Context) int {
	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	case pkgerrors.IsRender(err):
		return 2
	default:
		return 1
	}
}
