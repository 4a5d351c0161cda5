package summarizer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nguyentantai21042004/meeting-digest/internal/aggregator"
	"github.com/nguyentantai21042004/meeting-digest/internal/config"
	"github.com/nguyentantai21042004/meeting-digest/internal/errs"
	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
	"github.com/nguyentantai21042004/meeting-digest/internal/provider"
	"github.com/nguyentantai21042004/meeting-digest/pkg/retry"
)

var errOverloaded = errors.New("503 overloaded")

type fakeService struct {
	calls        []string
	instructions []string
	failOn       map[string]error
}

func (s *fakeService) Summarize(ctx context.Context, instruction, text string) (string, error) {
	s.calls = append(s.calls, text)
	s.instructions = append(s.instructions, instruction)
	if err, ok := s.failOn[text]; ok {
		delete(s.failOn, text)
		return "", err
	}
	return "  - summary of " + text + "\n", nil
}

func newSummarizer(svc Service) Summarizer {
	policy := retry.Policy{MaxRetries: 2, InitialInterval: time.Millisecond, MaxElapsed: time.Second}
	transient := func(err error) bool { return errors.Is(err, errOverloaded) }
	return New(svc, config.DefaultInstruction, transient, policy, logger.NewNop())
}

func writeAggregate(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, aggregator.CombinedJSON), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestSummarizeAll(t *testing.T) {
	dir := t.TempDir()
	writeAggregate(t, dir, `{"b_part2": "two", "b_part1": "one", "a": "zero"}`)
	svc := &fakeService{}

	record, err := newSummarizer(svc).SummarizeAll(context.Background(), dir)
	if err != nil {
		t.Fatalf("SummarizeAll() error = %v", err)
	}

	if strings.Join(svc.calls, ",") != "zero,one,two" {
		t.Errorf("calls = %v, want key order", svc.calls)
	}
	if svc.instructions[0] != config.DefaultInstruction {
		t.Errorf("instruction = %q", svc.instructions[0])
	}
	if got := record["b_part1"]; got.OriginalText != "one" || got.Summary != "- summary of one" {
		t.Errorf("entry = %+v", got)
	}

	loaded, err := Load(filepath.Join(dir, SummaryJSON))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(loaded) != 3 || loaded["a"].Summary != "- summary of zero" {
		t.Errorf("Load() = %v", loaded)
	}
	if strings.Join(loaded.Keys(), ",") != "a,b_part1,b_part2" {
		t.Errorf("Keys() = %v", loaded.Keys())
	}
}

func TestSummarizeAllRetriesTransient(t *testing.T) {
	dir := t.TempDir()
	writeAggregate(t, dir, `{"a": "zero"}`)
	svc := &fakeService{failOn: map[string]error{"zero": errOverloaded}}

	if _, err := newSummarizer(svc).SummarizeAll(context.Background(), dir); err != nil {
		t.Fatalf("SummarizeAll() error = %v", err)
	}
	if len(svc.calls) != 2 {
		t.Errorf("calls = %d, want 2", len(svc.calls))
	}
}

func TestSummarizeAllFailureWritesNothing(t *testing.T) {
	dir := t.TempDir()
	writeAggregate(t, dir, `{"a": "zero", "b": "too long"}`)
	previous := filepath.Join(dir, SummaryJSON)
	if err := os.WriteFile(previous, []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}
	svc := &fakeService{failOn: map[string]error{"too long": errors.New("400 context_length_exceeded")}}

	_, err := newSummarizer(svc).SummarizeAll(context.Background(), dir)
	if !errors.Is(err, errs.ErrService) {
		t.Fatalf("SummarizeAll() error = %v, want ErrService", err)
	}

	data, _ := os.ReadFile(previous)
	if string(data) != `{}` {
		t.Errorf("summary file was modified: %s", data)
	}
}

func TestSummarizeAllMissingAggregate(t *testing.T) {
	if _, err := newSummarizer(&fakeService{}).SummarizeAll(context.Background(), t.TempDir()); err == nil {
		t.Error("SummarizeAll() should fail without an aggregate")
	}
}

func TestOpenAISummarize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"c1","object":"chat.completion","model":"gpt-3.5-turbo","choices":[{"index":0,"message":{"role":"assistant","content":"- ship on Friday"},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	svc := NewOpenAI(provider.NewOpenAI("sk-test", srv.URL+"/v1"), "gpt-3.5-turbo")
	got, err := svc.Summarize(context.Background(), config.DefaultInstruction, "we ship on friday")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if got != "- ship on Friday" {
		t.Errorf("Summarize() = %q", got)
	}
}

func TestOpenAISummarizeUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`))
	}))
	defer srv.Close()

	svc := NewOpenAI(provider.NewOpenAI("sk-bad", srv.URL+"/v1"), "gpt-3.5-turbo")
	_, err := svc.Summarize(context.Background(), config.DefaultInstruction, "text")
	if err == nil {
		t.Fatal("Summarize() should fail")
	}
	if provider.OpenAITransient(err) {
		t.Error("auth failure must not be retried")
	}
}
