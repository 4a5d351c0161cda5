package transcriber

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/meeting-digest/internal/provider"
)

const geminiPrompt = "Transcribe this meeting recording verbatim. Return only the transcript text."

var audioMIME = map[string]string{
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".m4a":  "audio/mp4",
	".aac":  "audio/aac",
	".ogg":  "audio/ogg",
	".flac": "audio/flac",
}

type geminiService struct {
	gemini *provider.Gemini
	model  string
	prompt string
}

// geminiRecord is the persisted form of a Gemini transcription.
type geminiRecord struct {
	Text     string                         `json:"text"`
	Model    string                         `json:"model"`
	Response *genai.GenerateContentResponse `json:"response,omitempty"`
}

// NewGemini creates a Service that sends the audio inline to a Gemini model.
func NewGemini(g *provider.Gemini, model, prompt string) Service {
	if prompt == "" {
		prompt = geminiPrompt
	}
	return &geminiService{gemini: g, model: model, prompt: prompt}
}

func (s *geminiService) Transcribe(ctx context.Context, name string, audio []byte) (Record, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(s.prompt),
			genai.NewPartFromBytes(audio, mimeType(name)),
		}, genai.RoleUser),
	}

	text, resp, err := s.gemini.GenerateText(ctx, s.model, contents)
	if err != nil {
		return Record{}, err
	}

	raw, err := json.Marshal(geminiRecord{Text: strings.TrimSpace(text), Model: s.model, Response: resp})
	if err != nil {
		return Record{}, fmt.Errorf("marshal response: %w", err)
	}
	return Record{Text: strings.TrimSpace(text), Raw: raw}, nil
}

func mimeType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if t, ok := audioMIME[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}
