package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func newBufLogger() (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_WritesStructuredRecord(t *testing.T) {
	log, buf := newBufLogger()

	log.Info(context.Background(), "user registered", "email", "a@b.c")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if rec["msg"] != "user registered" {
		t.Fatalf("unexpected msg: %v", rec["msg"])
	}
	if rec["email"] != "a@b.c" {
		t.Fatalf("attribute missing: %v", rec["email"])
	}
}

func TestSlogLogger_WithAddsPersistentAttrs(t *testing.T) {
	log, buf := newBufLogger()

	child := log.With("module", "rest")
	child.Error(context.Background(), "boom")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if rec["module"] != "rest" {
		t.Fatalf("persistent attribute missing: %v", rec)
	}
	if rec["level"] != "ERROR" {
		t.Fatalf("unexpected level: %v", rec["level"])
	}
}
