package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  logrus.Level
	}{
		{"debug level", "debug", logrus.DebugLevel},
		{"info level", "info", logrus.InfoLevel},
		{"warn level", "WARN", logrus.WarnLevel},
		{"error level", "error", logrus.ErrorLevel},
		{"invalid level", "invalid", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := newWithOutput(&bytes.Buffer{}, tt.level, "text")
			if log.base.GetLevel() != tt.want {
				t.Errorf("level = %v, want %v", log.base.GetLevel(), tt.want)
			}
		})
	}
}

func TestLoggerLevels(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	log := newWithOutput(&buf, "info", "text")

	log.Debug(ctx, "debug message")
	log.Info(ctx, "info message")
	log.Warn(ctx, "warn message")
	log.Error(ctx, "error message")
	log.Info(ctx, "formatted message: %s %d", "test", 123)

	out := buf.String()
	if strings.Contains(out, "debug message") {
		t.Error("debug message logged at info level")
	}
	for _, want := range []string{"info message", "warn message", "error message", "formatted message: test 123"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRunIDField(t *testing.T) {
	var buf bytes.Buffer
	log := newWithOutput(&buf, "info", "json")

	ctx := WithRunID(context.Background())
	log.Info(ctx, "stage done")

	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if line["run_id"] != RunID(ctx) || RunID(ctx) == "" {
		t.Errorf("run_id = %v, want %q", line["run_id"], RunID(ctx))
	}
	if line["msg"] != "stage done" {
		t.Errorf("msg = %v", line["msg"])
	}
}

func TestRunIDMissing(t *testing.T) {
	if id := RunID(context.Background()); id != "" {
		t.Errorf("RunID() = %q, want empty", id)
	}
}
