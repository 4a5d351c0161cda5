package transcriber

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/meeting-digest/internal/provider"
)

func TestOpenAITranscribe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/audio/transcriptions" {
			http.NotFound(w, r)
			return
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("Authorization = %q", got)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm: %v", err)
		}
		if r.FormValue("model") != "whisper-1" {
			t.Errorf("model = %q", r.FormValue("model"))
		}
		_, header, err := r.FormFile("file")
		if err != nil || header.Filename != "rec_part1.mp3" {
			t.Errorf("file = %v, %v", header, err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"task":"transcribe","language":"english","duration":12.5,"text":"Let's ship it on Friday."}`))
	}))
	defer srv.Close()

	svc := NewOpenAI(provider.NewOpenAI("sk-test", srv.URL+"/v1"), "whisper-1", "", "")
	rec, err := svc.Transcribe(context.Background(), "rec_part1.mp3", []byte("ID3"))
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}

	if rec.Text != "Let's ship it on Friday." {
		t.Errorf("Text = %q", rec.Text)
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(rec.Raw, &raw); err != nil {
		t.Fatalf("Raw is not JSON: %v", err)
	}
	if raw["language"] != "english" {
		t.Errorf("Raw = %v, want service metadata kept", raw)
	}
}

func TestOpenAITranscribeRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"Rate limit reached","type":"requests"}}`))
	}))
	defer srv.Close()

	svc := NewOpenAI(provider.NewOpenAI("sk-test", srv.URL+"/v1"), "whisper-1", "", "")
	_, err := svc.Transcribe(context.Background(), "a.mp3", []byte("ID3"))
	if err == nil {
		t.Fatal("Transcribe() should fail")
	}

	var apiErr *openai.APIError
	if !errors.As(err, &apiErr) || apiErr.HTTPStatusCode != http.StatusTooManyRequests {
		t.Errorf("error = %v, want APIError 429", err)
	}
	if !provider.OpenAITransient(err) {
		t.Error("rate limit should be transient")
	}
	if !strings.Contains(err.Error(), "Rate limit") {
		t.Errorf("error = %q", err.Error())
	}
}

func TestMimeType(t *testing.T) {
	tests := map[string]string{
		"a.mp3":  "audio/mpeg",
		"b.WAV":  "audio/wav",
		"c.m4a":  "audio/mp4",
		"d.zzzq": "application/octet-stream",
	}
	for name, want := range tests {
		if got := mimeType(name); got != want {
			t.Errorf("mimeType(%q) = %q, want %q", name, got, want)
		}
	}
}
