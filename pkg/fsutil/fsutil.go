// Package fsutil holds the small file helpers shared by the pipeline stages.
package fsutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Stem returns the base name of path without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// WriteFileAtomic writes data to a temp file next to path and renames it into place,
// so readers never observe a partially written artifact.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}

// WriteJSON atomically writes v as JSON indented with four spaces.
// Map keys come out sorted, so equal values always produce identical bytes.
func WriteJSON(path string, v interface{}) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return WriteFileAtomic(path, buf.Bytes(), 0644)
}

// Stage writes several files to temporary paths and renames them into place
// together, so a failure before Commit leaves every target untouched.
type Stage struct {
	moves []move
}

type move struct {
	tmp, dst string
}

// Write stages data for path.
func (s *Stage) Write(path string, data []byte, perm os.FileMode) error {
	return s.WriteVia(path, func(tmp string) error {
		if err := os.WriteFile(tmp, data, perm); err != nil {
			return err
		}
		return os.Chmod(tmp, perm)
	})
}

// WriteVia stages the file write produces at a temporary path with path's extension.
func (s *Stage) WriteVia(path string, write func(tmpPath string) error) error {
	ext := filepath.Ext(path)
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+strings.TrimSuffix(filepath.Base(path), ext)+"-*"+ext)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	tmp.Close()

	if err := write(tmpName); err != nil {
		os.Remove(tmpName)
		return err
	}
	s.moves = append(s.moves, move{tmp: tmpName, dst: path})
	return nil
}

// Commit renames every staged file into place in the order they were staged.
func (s *Stage) Commit() error {
	for i, m := range s.moves {
		if err := os.Rename(m.tmp, m.dst); err != nil {
			s.moves = s.moves[i:]
			return fmt.Errorf("rename into place: %w", err)
		}
	}
	s.moves = nil
	return nil
}

// Discard removes staged files that were not committed. Safe to defer after Commit.
func (s *Stage) Discard() {
	for _, m := range s.moves {
		os.Remove(m.tmp)
	}
	s.moves = nil
}
