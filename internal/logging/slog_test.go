package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "k", "v")
	log.Info(ctx, "inf")
	log.Warn(ctx, "wrn")
	log.Error(ctx, "err")

	out := buf.String()
	for _, want := range []string{"level=DEBUG", "msg=dbg", "k=v", "level=INFO", "level=WARN", "level=ERROR"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSlogLogger_WithAddsAttrs(t *testing.T) {
	log, buf := newTestLogger(t)

	child := log.With("module", "httpapi")
	child.Info(context.Background(), "started")

	out := buf.String()
	if !strings.Contains(out, "module=httpapi") {
		t.Fatalf("child logger lost attrs:\n%s", out)
	}
}
