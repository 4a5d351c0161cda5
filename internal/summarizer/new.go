package summarizer

import (
	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
	"github.com/nguyentantai21042004/meeting-digest/pkg/retry"
)

type implSummarizer struct {
	service     Service
	instruction string
	transient   retry.Classifier
	policy      retry.Policy
	logger      logger.Logger
}

// New creates a Summarizer that sends every transcript with the same instruction.
func New(service Service, instruction string, transient retry.Classifier, policy retry.Policy, log logger.Logger) Summarizer {
	return &implSummarizer{
		service:     service,
		instruction: instruction,
		transient:   transient,
		policy:      policy,
		logger:      log,
	}
}
