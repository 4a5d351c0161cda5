package summarizer

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

type openaiService struct {
	client *openai.Client
	model  string
}

// NewOpenAI creates a Service backed by OpenAI chat completions.
func NewOpenAI(client *openai.Client, model string) Service {
	return &openaiService{client: client, model: model}
}

func (s *openaiService) Summarize(ctx context.Context, instruction, text string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: instruction},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from OpenAI")
	}
	return resp.Choices[0].Message.Content, nil
}
