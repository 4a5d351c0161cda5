package transcriber

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

type openaiService struct {
	client   *openai.Client
	model    string
	language string
	prompt   string
}

// NewOpenAI creates a Service backed by the OpenAI audio transcription endpoint.
func NewOpenAI(client *openai.Client, model, language, prompt string) Service {
	return &openaiService{
		client:   client,
		model:    model,
		language: language,
		prompt:   prompt,
	}
}

func (s *openaiService) Transcribe(ctx context.Context, name string, audio []byte) (Record, error) {
	resp, err := s.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    s.model,
		FilePath: name,
		Reader:   bytes.NewReader(audio),
		Prompt:   s.prompt,
		Language: s.language,
		Format:   openai.AudioResponseFormatVerboseJSON,
	})
	if err != nil {
		return Record{}, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return Record{}, fmt.Errorf("marshal response: %w", err)
	}
	return Record{Text: resp.Text, Raw: raw}, nil
}
