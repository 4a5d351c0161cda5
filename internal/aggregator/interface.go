package aggregator

import "context"

const (
	// CombinedJSON is the aggregate file written into the input directory.
	CombinedJSON = "combined_transcripts.json"
	// CombinedText is the plain-text flattening of CombinedJSON.
	CombinedText = "combined_transcripts.txt"
)

// Aggregator merges per-file transcript records into one keyed collection.
type Aggregator interface {
	// Combine reads every record under dir's transcripts directory and writes the aggregate.
	Combine(ctx context.Context, dir string) (Aggregate, error)
	// Flatten writes the text of every aggregate entry, in key order, to outFile.
	Flatten(ctx context.Context, aggregateFile, outFile string) (int, error)
}
