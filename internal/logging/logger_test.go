package logging

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
)

func TestNewLoggerNotNil(t *testing.T) {
	logger := NewLogger(Config{})
	if logger == nil {
		t.Fatal("expected logger to be non-nil")
	}
}

func TestNewLoggerUsesTextHandlerWithInfoLevel(t *testing.T) {
	logger := NewLogger(Config{Format: "text", Level: "info"})

	if enabled := logger.Enabled(context.Background(), slog.LevelInfo); !enabled {
		t.Fatal("expected info level to be enabled")
	}

	if enabled := logger.Enabled(context.Background(), slog.LevelDebug); enabled {
		t.Fatal("expected debug level to be disabled")
	}
}

func TestNewLoggerHonorsDebugLevel(t *testing.T) {
	logger := NewLogger(Config{Format: "json", Level: "DEBUG"})
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("expected debug level to be enabled")
	}
}

func TestParseLevelVariants(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"info":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for raw, want := range cases {
		if got := parseLevel(raw); got != want {
			t.Fatalf("level %q expected %s, got %s", raw, want, got)
		}
	}
}

func TestNewLoggerWithFileDoesNotPanic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.log")
	logger := NewLogger(Config{File: path, Service: "svc"})
	logger.Info("hello")
}
