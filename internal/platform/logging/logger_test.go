package logging

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]Level{
		"debug":   LevelDebug,
		" WARN ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestLoggerFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core)).With("component", "match")

	logger.Warn("score update failed", "match_id", "fb-m3", "error", errors.New("boom"), "dangling")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["component"] != "match" {
		t.Fatalf("missing With field: %+v", fields)
	}
	if fields["match_id"] != "fb-m3" {
		t.Fatalf("unexpected match_id: %+v", fields["match_id"])
	}
	if fields["error"] != "boom" {
		t.Fatalf("unexpected error field: %+v", fields["error"])
	}
	if _, ok := fields["dangling"]; !ok {
		t.Fatalf("expected dangling key to be kept")
	}
}

func TestLoggerRespectsLevel(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	logger := FromZap(zap.New(core))

	logger.Debug("hidden")
	logger.InfoContext(context.Background(), "shown")

	if logs.Len() != 1 || logs.All()[0].Message != "shown" {
		t.Fatalf("unexpected entries: %+v", logs.All())
	}
}

func TestSetMirror(t *testing.T) {
	core, _ := observer.New(zapcore.InfoLevel)
	logger := FromZap(zap.New(core))

	var (
		mu   sync.Mutex
		msgs []string
	)
	SetMirror(func(_ context.Context, level Level, msg string, args ...any) {
		mu.Lock()
		defer mu.Unlock()
		msgs = append(msgs, level.String()+":"+msg)
	})
	t.Cleanup(func() { SetMirror(nil) })

	logger.Debug("filtered")
	logger.ErrorContext(context.Background(), "mirrored", "k", "v")

	SetMirror(nil)
	logger.Info("after reset")

	mu.Lock()
	defer mu.Unlock()
	if len(msgs) != 1 || msgs[0] != "error:mirrored" {
		t.Fatalf("unexpected mirrored messages: %+v", msgs)
	}
}

func TestNilLoggerAndSync(t *testing.T) {
	t.Parallel()

	var nilLogger *Logger
	nilLogger.Info("falls back to the default logger")
	if err := nilLogger.Sync(); err != nil {
		t.Fatalf("nil Sync: %v", err)
	}

	core, _ := observer.New(zapcore.InfoLevel)
	logger := FromZap(zap.New(core))
	for i := 0; i < 2; i++ {
		if err := logger.Sync(); err != nil {
			t.Fatalf("Sync #%d: %v", i+1, err)
		}
	}
}
