package scanner

import (
	"context"

	"github.com/nguyentantai21042004/meeting-digest/internal/audio"
)

// Scanner enumerates the recordings of a directory and splits oversized ones.
type Scanner interface {
	// List returns the audio files directly inside dir, sorted by name.
	List(dir string) ([]string, error)
	// Prepare lists dir and replaces every oversized recording by its parts.
	Prepare(ctx context.Context, dir string) ([]audio.File, error)
}
