package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q)=%v,%v want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestPrettyJSONHandler_GroupsAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := NewPrettyJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	h.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	logger := slog.New(h).With("game_id", "abc").WithGroup("state")
	logger.Info("food eaten", "score", 3, "head", slog.GroupValue(slog.Int("row", 1), slog.Int("col", 2)))

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not one JSON object: %v\n%s", err, buf.String())
	}
	if got["msg"] != "food eaten" || got["level"] != "INFO" {
		t.Fatalf("unexpected header fields: %v", got)
	}
	if got["game_id"] != "abc" {
		t.Fatalf("game_id=%v want abc at top level", got["game_id"])
	}
	state, ok := got["state"].(map[string]any)
	if !ok {
		t.Fatalf("missing state group: %v", got)
	}
	if state["score"] != float64(3) {
		t.Fatalf("score=%v want 3", state["score"])
	}
	head, ok := state["head"].(map[string]any)
	if !ok || head["row"] != float64(1) || head["col"] != float64(2) {
		t.Fatalf("head=%v", state["head"])
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Fatalf("expected indented output:\n%s", buf.String())
	}
}

func TestPrettyJSONHandler_Enabled(t *testing.T) {
	h := NewPrettyJSONHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})
	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatalf("info should be disabled at warn level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Fatalf("error should be enabled at warn level")
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "snek.log")
	logger, closeFn, err := Open(path, FormatText, "info")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	logger.Info("hello", "k", "v")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "msg=hello") || !strings.Contains(string(b), "k=v") {
		t.Fatalf("unexpected log contents: %q", b)
	}

	if _, _, err := Open("", "xml", "info"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
	discard, closeFn, err := Open("", FormatPretty, "debug")
	if err != nil {
		t.Fatalf("Open discard: %v", err)
	}
	discard.Debug("dropped")
	_ = closeFn()
}
