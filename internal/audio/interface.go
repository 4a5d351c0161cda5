package audio

import (
	"context"
	"time"
)

// Codec is the decode/slice/export capability the segmenter needs.
type Codec interface {
	// Duration decodes path far enough to report its length.
	Duration(ctx context.Context, path string) (time.Duration, error)
	// Export writes the [start, start+length) slice of src to dst.
	Export(ctx context.Context, src, dst string, start, length time.Duration) error
}

// Segmenter splits recordings longer than a threshold into bounded chunks.
type Segmenter interface {
	Probe(ctx context.Context, path string) (File, error)
	NeedsSplit(f File) bool
	Split(ctx context.Context, f File) ([]File, error)
}
