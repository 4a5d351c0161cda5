package summarizer

import "context"

// SummaryJSON is the summary file written into the input directory.
const SummaryJSON = "summary.json"

// Service is a remote text summarization engine.
type Service interface {
	Summarize(ctx context.Context, instruction, text string) (string, error)
}

// Summarizer summarizes every entry of a directory's transcript aggregate.
type Summarizer interface {
	SummarizeAll(ctx context.Context, dir string) (Record, error)
}
