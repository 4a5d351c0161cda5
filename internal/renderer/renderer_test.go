package renderer

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/nguyentantai21042004/meeting-digest/internal/config"
	"github.com/nguyentantai21042004/meeting-digest/internal/errs"
	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
	"github.com/nguyentantai21042004/meeting-digest/internal/summarizer"
)

const summaryJSON = `{
    "2024_01_05_09_30_00_part1": {"original_text": "one", "summary": "- **Decision:** ship"},
    "2024_01_05_09_30_00_part2": {"original_text": "two", "summary": "- follow up"},
    "2024_01_06_10_00_00": {"original_text": "three", "summary": "1. hire"}
}`

func writeSummary(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, summarizer.SummaryJSON)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRenderMarkdown(t *testing.T) {
	dir := t.TempDir()
	in := writeSummary(t, dir, summaryJSON)
	out := filepath.Join(dir, MarkdownFile)
	if err := os.WriteFile(out, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	r := New(config.RenderConfig{Title: "Meeting Summaries"}, logger.NewNop())
	written, err := r.Render(context.Background(), in, out)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(written) != 1 {
		t.Errorf("written = %v, want markdown only", written)
	}

	got, _ := os.ReadFile(out)
	want := "# Meeting Summaries\n\n## 2024-01-05 09:30\n- **Decision:** ship\n- follow up\n\n## 2024-01-06 10:00\n1. hire\n"
	if string(got) != want {
		t.Errorf("markdown = %q, want %q", got, want)
	}
}

func TestRenderMalformedKeyWritesNothing(t *testing.T) {
	dir := t.TempDir()
	in := writeSummary(t, dir, `{"notes": {"original_text": "x", "summary": "y"}}`)
	out := filepath.Join(dir, MarkdownFile)

	r := New(config.RenderConfig{Title: "Meeting Summaries", Formats: []string{"docx"}}, logger.NewNop())
	_, err := r.Render(context.Background(), in, out)
	if !errors.Is(err, errs.ErrFormat) {
		t.Fatalf("Render() error = %v, want ErrFormat", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("summary.md should not be written")
	}
}

func TestRenderExports(t *testing.T) {
	dir := t.TempDir()
	in := writeSummary(t, dir, summaryJSON)
	out := filepath.Join(dir, MarkdownFile)

	r := New(config.RenderConfig{Title: "Meeting Summaries", Formats: []string{"markdown", "docx", "xlsx"}}, logger.NewNop())
	written, err := r.Render(context.Background(), in, out)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(written) != 3 {
		t.Fatalf("written = %v, want md, docx and xlsx", written)
	}

	docx, err := os.ReadFile(filepath.Join(dir, "summary.docx"))
	if err != nil {
		t.Fatalf("docx missing: %v", err)
	}
	if !bytes.HasPrefix(docx, []byte("PK")) {
		t.Error("docx is not a zip container")
	}

	f, err := excelize.OpenFile(filepath.Join(dir, "summary.xlsx"))
	if err != nil {
		t.Fatalf("open xlsx: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("rows = %d, want header + 3", len(rows))
	}
	if rows[2][0] != "2024-01-05 09:30" || rows[2][2] != "2" || rows[2][3] != "2024_01_05_09_30_00_part2" {
		t.Errorf("row 3 = %v", rows[2])
	}
}

func TestRenderMissingSummary(t *testing.T) {
	dir := t.TempDir()
	r := New(config.RenderConfig{Title: "Meeting Summaries"}, logger.NewNop())
	if _, err := r.Render(context.Background(), filepath.Join(dir, "summary.json"), filepath.Join(dir, MarkdownFile)); err == nil {
		t.Error("Render() should fail without a summary file")
	}
}

func TestRenderFailedExportKeepsPreviousOutputs(t *testing.T) {
	dir := t.TempDir()
	in := writeSummary(t, dir, summaryJSON)
	out := filepath.Join(dir, MarkdownFile)
	if err := os.WriteFile(out, []byte("previous digest"), 0644); err != nil {
		t.Fatal(err)
	}

	r := &implRenderer{
		cfg:    config.RenderConfig{Title: "Meeting Summaries", Formats: []string{"docx", "xlsx"}},
		logger: logger.NewNop(),
		docx: func(doc Document, path string) error {
			return errors.New("disk full")
		},
	}

	if _, err := r.Render(context.Background(), in, out); err == nil {
		t.Fatal("Render() should fail when an export fails")
	}

	if data, _ := os.ReadFile(out); string(data) != "previous digest" {
		t.Errorf("summary.md = %q, want previous digest", data)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory = %v, want only summary.json and summary.md", names)
	}
}
