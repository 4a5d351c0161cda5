package summarizer

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/meeting-digest/internal/aggregator"
	"github.com/nguyentantai21042004/meeting-digest/internal/errs"
	"github.com/nguyentantai21042004/meeting-digest/pkg/fsutil"
	"github.com/nguyentantai21042004/meeting-digest/pkg/retry"
)

// SummarizeAll summarizes the aggregate of dir in key order. The summary file is
// written only after every key succeeded.
func (s *implSummarizer) SummarizeAll(ctx context.Context, dir string) (Record, error) {
	combined, err := aggregator.Load(filepath.Join(dir, aggregator.CombinedJSON))
	if err != nil {
		return nil, fmt.Errorf("load aggregate: %w", err)
	}

	keys := combined.Keys()
	s.logger.Info(ctx, "Found %d transcripts to summarize", len(keys))

	record := make(Record, len(keys))
	for i, key := range keys {
		s.logger.Info(ctx, "[%d/%d] Summarizing: %s", i+1, len(keys), key)

		summary, err := s.summarize(ctx, combined[key])
		if err != nil {
			return nil, fmt.Errorf("%w: summarize %s: %w", errs.ErrService, key, err)
		}
		record[key] = Entry{OriginalText: combined[key], Summary: summary}
	}

	out := filepath.Join(dir, SummaryJSON)
	if err := fsutil.WriteJSON(out, record); err != nil {
		return nil, fmt.Errorf("write summary: %w", err)
	}

	s.logger.Info(ctx, "Summary complete: %d entries -> %s", len(record), out)
	return record, nil
}

func (s *implSummarizer) summarize(ctx context.Context, text string) (string, error) {
	var summary string
	err := retry.Do(ctx, s.policy, s.transient, func(ctx context.Context) error {
		out, err := s.service.Summarize(ctx, s.instruction, text)
		if err != nil {
			s.logger.Warn(ctx, "Summarization call failed: %v", err)
			return err
		}
		summary = strings.TrimSpace(out)
		return nil
	})
	return summary, err
}
