package controller

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"ovalplayer/internal/platform"
)

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Fatalf("expected the default logger to discard everything")
	}

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	c, _ := newTestController()
	c.KeyDown(platform.KeyEscape)
	if !strings.Contains(buf.String(), "quit requested") {
		t.Fatalf("expected quit to be logged, got %q", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Fatalf("expected a nil logger to silence output")
	}
}
