package pipeline

import (
	"github.com/nguyentantai21042004/meeting-digest/internal/aggregator"
	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
	"github.com/nguyentantai21042004/meeting-digest/internal/renderer"
	"github.com/nguyentantai21042004/meeting-digest/internal/scanner"
	"github.com/nguyentantai21042004/meeting-digest/internal/summarizer"
	"github.com/nguyentantai21042004/meeting-digest/internal/transcriber"
)

// Stages groups the collaborators a Pipeline drives, in run order.
type Stages struct {
	Scanner     scanner.Scanner
	Transcriber transcriber.Coordinator
	Aggregator  aggregator.Aggregator
	Summarizer  summarizer.Summarizer
	Renderer    renderer.Renderer
}

type implPipeline struct {
	stages Stages
	logger logger.Logger
}

// New creates a new Pipeline instance
func New(stages Stages, log logger.Logger) Pipeline {
	return &implPipeline{
		stages: stages,
		logger: log,
	}
}
