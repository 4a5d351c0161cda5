package renderer

import (
	"github.com/nguyentantai21042004/meeting-digest/internal/config"
	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
)

type implRenderer struct {
	cfg    config.RenderConfig
	logger logger.Logger
	docx   func(doc Document, path string) error
}

// New creates a Renderer using the title and export formats of cfg.
func New(cfg config.RenderConfig, log logger.Logger) Renderer {
	return &implRenderer{
		cfg:    cfg,
		logger: log,
		docx:   writeDocx,
	}
}
