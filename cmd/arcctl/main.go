package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/airiskcouncil/arcctl/internal/cmd"
	"github.com/airiskcouncil/arcctl/internal/exitcode"
	"github.com/airiskcouncil/arcctl/internal/ux"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		if ctx.Err() == context.Canceled {
			fmt.Fprintln(os.Stderr, "\nOperation cancelled by user")
			exitcode.Exit(exitcode.Interrupted)
		}

		ux.PrintError(os.Stderr, err, os.Getenv("NO_COLOR") != "")
		exitcode.ExitWithError(err)
	}
	exitcode.Exit(exitcode.Success)
}
