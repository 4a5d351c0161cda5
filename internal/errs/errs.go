// Package errs holds the error kinds shared by every pipeline stage.
// Stages wrap them with fmt.Errorf("%w: ...") and callers classify with errors.Is.
package errs

import "errors"

var (
	// ErrConfiguration covers a bad input directory, a bad config file or a missing credential.
	ErrConfiguration = errors.New("configuration error")
	// ErrDecode means an audio file could not be probed, sliced or exported.
	ErrDecode = errors.New("decode error")
	// ErrNotFound means an audio file disappeared between listing and reading.
	ErrNotFound = errors.New("not found")
	// ErrService is any failure of a remote transcription or summarization call.
	ErrService = errors.New("service error")
	// ErrFormat means a transcript, aggregate or key did not have the expected shape.
	ErrFormat = errors.New("format error")
	// ErrOverwriteDeclined aborts a run because transcripts exist and overwriting was not allowed.
	ErrOverwriteDeclined = errors.New("overwrite declined")
)

// Kind returns the sentinel err wraps, or nil if it wraps none of them.
func Kind(err error) error {
	for _, k := range []error{ErrOverwriteDeclined, ErrConfiguration, ErrDecode, ErrNotFound, ErrService, ErrFormat} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
