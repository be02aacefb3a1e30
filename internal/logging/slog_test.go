package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestSlogLogger_LevelsAndWith(t *testing.T) {
	var buf bytes.Buffer
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	log := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, opts)))

	child := log.With("component", "store")
	child.Debug(context.Background(), "store loaded", "users", 2)
	child.Warn(context.Background(), "store unreadable")

	out := buf.String()
	for _, want := range []string{
		"level=DEBUG", "store loaded", "users=2",
		"level=WARN", "store unreadable",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}

	if strings.Count(out, "component=store") != 2 {
		t.Fatalf("child logger should carry its pairs on every record:\n%s", out)
	}
}

func TestSlogLogger_WithDoesNotAffectParent(t *testing.T) {
	var buf bytes.Buffer
	log := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	_ = log.With("component", "store")
	log.Info(context.Background(), "plain record")

	if strings.Contains(buf.String(), "component=store") {
		t.Fatalf("parent logger must not inherit child pairs:\n%s", buf.String())
	}
}
