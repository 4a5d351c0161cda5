package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/meeting-digest/internal/aggregator"
	"github.com/nguyentantai21042004/meeting-digest/internal/errs"
	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
	"github.com/nguyentantai21042004/meeting-digest/internal/renderer"
	"github.com/nguyentantai21042004/meeting-digest/internal/summarizer"
	"github.com/nguyentantai21042004/meeting-digest/internal/transcriber"
)

// Run executes the stages in order. Existing transcripts are checked before
// anything is split, so a declined overwrite leaves the directory untouched.
func (p *implPipeline) Run(ctx context.Context, dir string, opts Options) (Result, error) {
	if logger.RunID(ctx) == "" {
		ctx = logger.WithRunID(ctx)
	}
	startTime := time.Now()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting meeting digest: %s", dir)
	p.logger.Info(ctx, "========================================")

	if !opts.Overwrite {
		exists, err := p.stages.Transcriber.HasExisting(dir)
		if err != nil {
			return Result{}, fmt.Errorf("check transcripts: %w", err)
		}
		if exists {
			return Result{}, errs.ErrOverwriteDeclined
		}
	}

	// Step 1: List recordings and split the long ones
	files, err := p.stages.Scanner.Prepare(ctx, dir)
	if err != nil {
		return Result{}, fmt.Errorf("prepare audio: %w", err)
	}

	// Step 2: Transcribe every file
	report, err := p.stages.Transcriber.TranscribeAll(ctx, dir, files, transcriber.Options{Overwrite: opts.Overwrite})
	result := Result{Found: report.Found, Transcribed: report.Transcribed}
	if err != nil {
		return result, fmt.Errorf("transcribe: %w", err)
	}

	if report.Transcribed <= 1 {
		p.logger.Info(ctx, "%d file(s) transcribed, nothing to combine. Stopping.", report.Transcribed)
		return result, nil
	}

	// Step 3: Combine records and flatten them to plain text
	combinedJSON := filepath.Join(dir, aggregator.CombinedJSON)
	combinedText := filepath.Join(dir, aggregator.CombinedText)
	if _, err := p.stages.Aggregator.Combine(ctx, dir); err != nil {
		return result, fmt.Errorf("combine: %w", err)
	}
	result.Artifacts = append(result.Artifacts, combinedJSON)

	if _, err := p.stages.Aggregator.Flatten(ctx, combinedJSON, combinedText); err != nil {
		return result, fmt.Errorf("flatten: %w", err)
	}
	result.Artifacts = append(result.Artifacts, combinedText)

	// Step 4: Summarize every transcript
	if _, err := p.stages.Summarizer.SummarizeAll(ctx, dir); err != nil {
		return result, fmt.Errorf("summarize: %w", err)
	}
	summaryJSON := filepath.Join(dir, summarizer.SummaryJSON)
	result.Artifacts = append(result.Artifacts, summaryJSON)

	// Step 5: Render the digest
	written, err := p.stages.Renderer.Render(ctx, summaryJSON, filepath.Join(dir, renderer.MarkdownFile))
	result.Artifacts = append(result.Artifacts, written...)
	if err != nil {
		return result, fmt.Errorf("render: %w", err)
	}
	result.Digested = true

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Digest completed successfully!")
	for _, a := range result.Artifacts {
		p.logger.Info(ctx, "Output: %s", a)
	}
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return result, nil
}
