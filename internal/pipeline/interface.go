package pipeline

import "context"

// Pipeline runs every stage over one input directory.
type Pipeline interface {
	Run(ctx context.Context, dir string, opts Options) (Result, error)
}

// Options is the per-run policy chosen by the caller.
type Options struct {
	// Overwrite allows replacing transcripts left by an earlier run.
	Overwrite bool
}

// Result describes what a run produced.
type Result struct {
	Found       int
	Transcribed int
	// Digested is false when fewer than two files were transcribed and the
	// combine, summarize and render stages were skipped.
	Digested  bool
	Artifacts []string
}
