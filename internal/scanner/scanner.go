package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/meeting-digest/internal/audio"
)

func (s *implScanner) List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	// os.ReadDir sorts by file name, which is the processing order.
	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if s.isAudioFile(e.Name()) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}

func (s *implScanner) Prepare(ctx context.Context, dir string) ([]audio.File, error) {
	paths, err := s.List(dir)
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "Found %d audio files in %s", len(paths), dir)

	var files []audio.File
	for _, path := range paths {
		f, err := s.segmenter.Probe(ctx, path)
		if err != nil {
			return nil, err
		}

		if !s.segmenter.NeedsSplit(f) {
			files = append(files, f)
			continue
		}

		parts, err := s.segmenter.Split(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("split %s: %w", filepath.Base(path), err)
		}
		files = append(files, parts...)
	}

	return files, nil
}

// isAudioFile checks if the file has a configured audio extension
func (s *implScanner) isAudioFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range s.extensions {
		if ext == e {
			return true
		}
	}
	return false
}
