package transcriber

import (
	"context"

	"github.com/nguyentantai21042004/meeting-digest/internal/audio"
)

// DirName is the subdirectory of the input directory that holds one record per audio file.
const DirName = "transcriptions"

// Service is a remote speech-to-text engine.
type Service interface {
	// Transcribe sends the raw bytes of the audio file called name.
	Transcribe(ctx context.Context, name string, audio []byte) (Record, error)
}

// Coordinator transcribes every prepared audio file of a directory.
type Coordinator interface {
	// HasExisting reports whether dir already holds transcript records.
	HasExisting(dir string) (bool, error)
	TranscribeAll(ctx context.Context, dir string, files []audio.File, opts Options) (Report, error)
}

// Options is the per-run policy of TranscribeAll.
type Options struct {
	// Overwrite allows replacing existing transcript records. Without it a
	// directory that already has records aborts the run before any call.
	Overwrite bool
}

// Report counts the outcome of TranscribeAll.
type Report struct {
	Found       int
	Transcribed int
	Keys        []string
}
