package provider

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
)

// Gemini wraps genai clients for an ordered list of API keys and rotates to the
// next key when the current one is rate limited.
type Gemini struct {
	mu         sync.Mutex
	apiKeys    []string
	clients    map[int]*genai.Client
	currentKey int
	logger     logger.Logger
}

// NewGemini creates a Gemini wrapper; keys are tried in order.
func NewGemini(apiKeys []string, log logger.Logger) *Gemini {
	return &Gemini{
		apiKeys: apiKeys,
		clients: make(map[int]*genai.Client),
		logger:  log,
	}
}

// GenerateText sends contents to model and returns the concatenated text of the first candidate
// together with the raw response.
func (g *Gemini) GenerateText(ctx context.Context, model string, contents []*genai.Content) (string, *genai.GenerateContentResponse, error) {
	if len(g.apiKeys) == 0 {
		return "", nil, fmt.Errorf("no Gemini API keys configured")
	}

	var lastErr error
	for range len(g.apiKeys) {
		client, idx, err := g.client(ctx)
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			g.rotateKey(idx)
			continue
		}

		result, err := client.Models.GenerateContent(ctx, model, contents, nil)
		if err != nil {
			if isRateLimited(err) {
				g.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
				g.rotateKey(idx)
				lastErr = err
				continue
			}
			return "", nil, fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			if text != "" {
				return text, result, nil
			}
		}

		return "", result, fmt.Errorf("empty response from Gemini")
	}

	return "", nil, fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (g *Gemini) client(ctx context.Context) (*genai.Client, int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	idx := g.currentKey
	if c, ok := g.clients[idx]; ok {
		return c, idx, nil
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKeys[idx],
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, idx, err
	}
	g.clients[idx] = c
	return c, idx, nil
}

// rotateKey advances past idx unless another call already did.
func (g *Gemini) rotateKey(idx int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.currentKey == idx {
		g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
	}
}

func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

// GeminiTransient reports rate limits, unavailable backends and network timeouts.
func GeminiTransient(err error) bool {
	if isRateLimited(err) || isTimeout(err) {
		return true
	}
	msg := err.Error()
	for _, s := range []string{"500", "502", "503", "504", "UNAVAILABLE", "INTERNAL"} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
