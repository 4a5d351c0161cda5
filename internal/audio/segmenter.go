package audio

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/nguyentantai21042004/meeting-digest/internal/errs"
)

// Plan cuts total into consecutive chunks of length chunk; only the last may be shorter.
// An exact multiple yields total/chunk chunks with no empty tail.
func Plan(total, chunk time.Duration) []Chunk {
	if total <= 0 || chunk <= 0 {
		return nil
	}

	var chunks []Chunk
	for start := time.Duration(0); start < total; start += chunk {
		length := chunk
		if rest := total - start; rest < length {
			length = rest
		}
		chunks = append(chunks, Chunk{Index: len(chunks) + 1, Start: start, Length: length})
	}
	return chunks
}

func (s *implSegmenter) Probe(ctx context.Context, path string) (File, error) {
	d, err := s.codec.Duration(ctx, path)
	if err != nil {
		return File{}, fmt.Errorf("%w: probe %s: %w", errs.ErrDecode, path, err)
	}
	return File{Path: path, Duration: d, Part: PartNumber(path)}, nil
}

// NeedsSplit never splits a chunk again: stream-copied slices can overrun their
// length by a frame, and a rerun would otherwise nest _part suffixes.
func (s *implSegmenter) NeedsSplit(f File) bool {
	return f.Part == 0 && f.Duration > s.threshold
}

// Split exports every chunk of f and removes f only once all of them exist.
// On failure the exported chunks are removed and f is left untouched.
func (s *implSegmenter) Split(ctx context.Context, f File) ([]File, error) {
	plan := Plan(f.Duration, s.chunk)
	s.logger.Info(ctx, "Splitting %s (%.1f min) into %d parts", f.Path, f.Minutes(), len(plan))

	parts := make([]File, 0, len(plan))
	for _, c := range plan {
		dst := PartPath(f.Path, c.Index)
		if err := s.codec.Export(ctx, f.Path, dst, c.Start, c.Length); err != nil {
			s.removeParts(ctx, append(parts, File{Path: dst}))
			return nil, fmt.Errorf("%w: export part %d of %s: %w", errs.ErrDecode, c.Index, f.Path, err)
		}
		s.logger.Debug(ctx, "Exported %s [%s +%s]", dst, c.Start, c.Length)
		parts = append(parts, File{Path: dst, Duration: c.Length, Part: c.Index})
	}

	if err := os.Remove(f.Path); err != nil {
		return nil, fmt.Errorf("remove original %s: %w", f.Path, err)
	}

	return parts, nil
}

// removeParts deletes chunks of an aborted split, logs warning if fails
func (s *implSegmenter) removeParts(ctx context.Context, parts []File) {
	for _, p := range parts {
		if err := os.Remove(p.Path); err != nil && !os.IsNotExist(err) {
			s.logger.Warn(ctx, "Failed to cleanup part %s: %v", p.Path, err)
		}
	}
}
