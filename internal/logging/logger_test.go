package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestConsoleLogger(buf *bytes.Buffer, level string) *slog.Logger {
	levelVar := new(slog.LevelVar)
	levelVar.Set(parseLevel(level))
	return slog.New(newConsoleHandler(buf, levelVar))
}

func TestConsoleHandlerPromotesComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestConsoleLogger(&buf, "info")

	logger.With(slog.String(FieldComponent, "pool")).Info("task done",
		slog.String(FieldPath, "/in/a.heic"))

	out := buf.String()
	if !strings.Contains(out, "INFO [pool] task done") {
		t.Fatalf("expected header with component, got %q", out)
	}
	if !strings.Contains(out, "    path: /in/a.heic") {
		t.Fatalf("expected indented path field, got %q", out)
	}
}

func TestConsoleHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestConsoleLogger(&buf, "warn")

	logger.Info("hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should have been suppressed: %q", out)
	}
	if !strings.Contains(out, "WARN visible") {
		t.Fatalf("expected warn line, got %q", out)
	}
}

func TestConsoleHandlerFlattensGroups(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestConsoleLogger(&buf, "info")

	logger.Info("summary", slog.Group("counts", slog.Int("failed", 2)))

	if !strings.Contains(buf.String(), "counts.failed: 2") {
		t.Fatalf("expected flattened group key, got %q", buf.String())
	}
}

func TestConsoleHandlerDeduplicatesKeys(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestConsoleLogger(&buf, "info")

	logger.Info("msg", slog.String("key", "old"), slog.String("key", "new"))

	out := buf.String()
	if strings.Contains(out, "old") {
		t.Fatalf("expected later value to win, got %q", out)
	}
	if strings.Count(out, "key: ") != 1 {
		t.Fatalf("expected a single key line, got %q", out)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewJSONFormatEmitsLowercaseLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.log")
	logger, err := New(Options{Level: "info", Format: "json", OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Error("boom")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	var record map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &record); err != nil {
		t.Fatalf("parse json record: %v (raw %q)", err, data)
	}
	if record["level"] != "error" {
		t.Fatalf("expected lowercase level, got %v", record["level"])
	}
	if record["msg"] != "boom" {
		t.Fatalf("expected msg field, got %v", record["msg"])
	}
}

func TestNewCreatesLogFileParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "darkroom.log")
	logger, err := New(Options{Format: "console", OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("hello")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected log file to exist: %v", err)
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	logger.Info("goes nowhere")
}
