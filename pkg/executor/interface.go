package executor

import "context"

// Executor runs external tools such as ffmpeg and ffprobe.
type Executor interface {
	// Output runs the command and returns its stdout.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
	// Run runs the command and discards its stdout.
	Run(ctx context.Context, name string, args ...string) error
}
