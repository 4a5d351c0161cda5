package aggregator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/meeting-digest/internal/transcriber"
	"github.com/nguyentantai21042004/meeting-digest/pkg/fsutil"
)

// Combine parses every record before writing anything, so a bad record leaves any
// previous aggregate untouched.
func (a *implAggregator) Combine(ctx context.Context, dir string) (Aggregate, error) {
	files, err := discoverRecords(filepath.Join(dir, transcriber.DirName))
	if err != nil {
		return nil, fmt.Errorf("discover transcripts: %w", err)
	}

	combined := make(Aggregate, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read transcript %s: %w", path, err)
		}
		rec, err := transcriber.DecodeRecord(data)
		if err != nil {
			return nil, fmt.Errorf("parse transcript %s: %w", filepath.Base(path), err)
		}
		combined[fsutil.Stem(path)] = rec.Text
	}

	out := filepath.Join(dir, CombinedJSON)
	if err := fsutil.WriteJSON(out, combined); err != nil {
		return nil, fmt.Errorf("write aggregate: %w", err)
	}

	a.logger.Info(ctx, "All %d transcripts combined into '%s'", len(combined), out)
	return combined, nil
}

func (a *implAggregator) Flatten(ctx context.Context, aggregateFile, outFile string) (int, error) {
	combined, err := Load(aggregateFile)
	if err != nil {
		return 0, err
	}

	var sb strings.Builder
	for _, k := range combined.Keys() {
		sb.WriteString(combined[k])
		sb.WriteString("\n")
	}

	if err := fsutil.WriteFileAtomic(outFile, []byte(sb.String()), 0644); err != nil {
		return 0, fmt.Errorf("write plain text: %w", err)
	}

	a.logger.Info(ctx, "Plain text file '%s' created from '%s'", outFile, aggregateFile)
	return len(combined), nil
}

// discoverRecords lists the .txt records of dir sorted by file name.
func discoverRecords(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if strings.ToLower(filepath.Ext(e.Name())) == ".txt" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}
