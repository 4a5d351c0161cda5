package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/nguyentantai21042004/meeting-digest/internal/errs"
)

const abortMessage = "Aborted. No transcripts have been overwritten."

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	os.Exit(exitCode(err, os.Stdout, os.Stderr))
}

// exitCode reports err to the user and maps its kind to the process exit status.
func exitCode(err error, stdout, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(stderr, "Interrupted")
		return 130
	}

	switch errs.Kind(err) {
	case errs.ErrOverwriteDeclined:
		fmt.Fprintln(stdout, abortMessage)
		return 0
	case errs.ErrConfiguration:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}
