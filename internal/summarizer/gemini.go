package summarizer

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/meeting-digest/internal/provider"
)

const geminiTemplate = `%s

Transcript:
---
%s
---`

type geminiService struct {
	gemini *provider.Gemini
	model  string
}

// NewGemini creates a Service backed by Gemini with API key rotation.
func NewGemini(g *provider.Gemini, model string) Service {
	return &geminiService{gemini: g, model: model}
}

func (s *geminiService) Summarize(ctx context.Context, instruction, text string) (string, error) {
	prompt := fmt.Sprintf(geminiTemplate, instruction, text)
	summary, _, err := s.gemini.GenerateText(ctx, s.model, genai.Text(prompt))
	return summary, err
}
