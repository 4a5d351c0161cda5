package transcriber

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/meeting-digest/internal/audio"
	"github.com/nguyentantai21042004/meeting-digest/internal/errs"
	"github.com/nguyentantai21042004/meeting-digest/pkg/fsutil"
	"github.com/nguyentantai21042004/meeting-digest/pkg/retry"
)

func (c *implCoordinator) HasExisting(dir string) (bool, error) {
	entries, err := os.ReadDir(filepath.Join(dir, DirName))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read transcripts dir: %w", err)
	}
	for _, e := range entries {
		if !e.IsDir() {
			return true, nil
		}
	}
	return false, nil
}

// TranscribeAll checks for existing records itself so it is safe to call on its
// own; the pipeline repeats the check earlier, before any file is split.
func (c *implCoordinator) TranscribeAll(ctx context.Context, dir string, files []audio.File, opts Options) (Report, error) {
	if !opts.Overwrite {
		exists, err := c.HasExisting(dir)
		if err != nil {
			return Report{}, err
		}
		if exists {
			return Report{}, errs.ErrOverwriteDeclined
		}
	}

	report := Report{Found: len(files)}
	c.logger.Info(ctx, "%d audio files found", report.Found)
	if len(files) == 0 {
		c.logger.Info(ctx, "0 files successfully transcribed")
		return report, nil
	}

	outDir := filepath.Join(dir, DirName)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return report, fmt.Errorf("create transcripts dir: %w", err)
	}

	for i, f := range files {
		c.logger.Info(ctx, "[%d/%d] Transcribing %s", i+1, len(files), filepath.Base(f.Path))

		key, err := c.transcribeOne(ctx, outDir, f)
		if err != nil {
			return report, err
		}
		report.Transcribed++
		report.Keys = append(report.Keys, key)
	}

	c.logger.Info(ctx, "%d files successfully transcribed", report.Transcribed)
	return report, nil
}

// transcribeOne sends f to the service and writes its record; any failure is fatal to the run.
func (c *implCoordinator) transcribeOne(ctx context.Context, outDir string, f audio.File) (string, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s vanished after listing", errs.ErrNotFound, f.Path)
	}
	if err != nil {
		return "", fmt.Errorf("read audio %s: %w", f.Path, err)
	}

	var rec Record
	err = retry.Do(ctx, c.policy, c.transient, func(ctx context.Context) error {
		var callErr error
		rec, callErr = c.service.Transcribe(ctx, filepath.Base(f.Path), data)
		if callErr != nil {
			c.logger.Warn(ctx, "Transcription of %s failed: %v", filepath.Base(f.Path), callErr)
		}
		return callErr
	})
	if err != nil {
		return "", fmt.Errorf("%w: transcribe %s: %w", errs.ErrService, filepath.Base(f.Path), err)
	}

	encoded, err := rec.Encode()
	if err != nil {
		return "", fmt.Errorf("transcribe %s: %w", filepath.Base(f.Path), err)
	}

	key := fsutil.Stem(f.Path)
	out := filepath.Join(outDir, key+".txt")
	if err := fsutil.WriteFileAtomic(out, encoded, 0644); err != nil {
		return "", fmt.Errorf("write transcript %s: %w", out, err)
	}

	c.logger.Debug(ctx, "Transcript written: %s", out)
	return key, nil
}
