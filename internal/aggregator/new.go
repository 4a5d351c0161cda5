package aggregator

import (
	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
)

type implAggregator struct {
	logger logger.Logger
}

// New creates a new Aggregator instance
func New(log logger.Logger) Aggregator {
	return &implAggregator{logger: log}
}
