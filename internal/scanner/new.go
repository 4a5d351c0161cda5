package scanner

import (
	"github.com/nguyentantai21042004/meeting-digest/internal/audio"
	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
)

type implScanner struct {
	segmenter  audio.Segmenter
	logger     logger.Logger
	extensions []string
}

// New creates a Scanner that picks files with one of the given extensions (lower case, with dot).
func New(seg audio.Segmenter, log logger.Logger, extensions []string) Scanner {
	return &implScanner{
		segmenter:  seg,
		logger:     log,
		extensions: extensions,
	}
}
