package transcriber

import (
	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
	"github.com/nguyentantai21042004/meeting-digest/pkg/retry"
)

type implCoordinator struct {
	service   Service
	transient retry.Classifier
	policy    retry.Policy
	logger    logger.Logger
}

// New creates a Coordinator that calls service once per file, retrying only
// errors transient classifies as such, within policy.
func New(service Service, transient retry.Classifier, policy retry.Policy, log logger.Logger) Coordinator {
	return &implCoordinator{
		service:   service,
		transient: transient,
		policy:    policy,
		logger:    log,
	}
}
