package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/csvtransform/internal/core"
	_ "github.com/JonMunkholm/csvtransform/internal/core/tables" // Register all profiles
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists; real environment variables take precedence
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	} else {
		slog.Debug("loaded .env file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		reportError(err)
		os.Exit(1)
	}
}

// reportError prints which stage failed and the coded message before exit.
func reportError(err error) {
	var se *core.StageError
	if errors.As(err, &se) {
		fmt.Fprintf(os.Stderr, "%s stage failed: %s\n", se.Stage, core.FormatUserError(err))
		fmt.Fprintf(os.Stderr, "  cause: %v\n", se.Err)
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}
