package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tiwariParth/clean-todo-cli/internal/cli"
	"github.com/tiwariParth/clean-todo-cli/internal/ui"
)

func main() {
	// In a terminal readline reports Ctrl+C itself; when input is piped the
	// signal cancels the context instead, which ends the shell.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cli.NewRootCommand(nil).ExecuteContext(ctx)
	if err == nil {
		return
	}
	if !errors.Is(err, cli.ErrCommandFailed) {
		fmt.Fprintln(os.Stderr, ui.Red("Error: ")+err.Error())
	}
	stop()
	os.Exit(1)
}
