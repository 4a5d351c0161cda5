package renderer

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/meeting-digest/internal/config"
	"github.com/nguyentantai21042004/meeting-digest/internal/summarizer"
	"github.com/nguyentantai21042004/meeting-digest/pkg/fsutil"
)

// Render builds the document and stages every output before renaming any of
// them into place, so a malformed key or a failed export leaves all previous
// outputs as they were.
func (r *implRenderer) Render(ctx context.Context, summaryFile, outFile string) ([]string, error) {
	record, err := summarizer.Load(summaryFile)
	if err != nil {
		return nil, err
	}

	doc, err := Build(r.cfg.Title, record)
	if err != nil {
		return nil, fmt.Errorf("build document: %w", err)
	}

	var stage fsutil.Stage
	defer stage.Discard()

	if err := stage.Write(outFile, []byte(doc.Markdown()), 0644); err != nil {
		return nil, fmt.Errorf("write markdown: %w", err)
	}
	written := []string{outFile}

	base := strings.TrimSuffix(outFile, filepath.Ext(outFile))
	if r.cfg.HasFormat(config.FormatDocx) {
		path := base + ".docx"
		if err := stage.WriteVia(path, func(tmp string) error { return r.docx(doc, tmp) }); err != nil {
			return nil, fmt.Errorf("write docx: %w", err)
		}
		written = append(written, path)
	}
	if r.cfg.HasFormat(config.FormatXlsx) {
		path := base + ".xlsx"
		data, err := encodeXlsx(doc)
		if err != nil {
			return nil, fmt.Errorf("write xlsx: %w", err)
		}
		if err := stage.Write(path, data, 0644); err != nil {
			return nil, fmt.Errorf("write xlsx: %w", err)
		}
		written = append(written, path)
	}

	if err := stage.Commit(); err != nil {
		return nil, err
	}

	r.logger.Info(ctx, "Digest written: %s (%d meetings, %d summaries)", outFile, len(doc.Sections), len(record))
	for _, path := range written[1:] {
		r.logger.Info(ctx, "Export written: %s", path)
	}
	return written, nil
}
