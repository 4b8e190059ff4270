package logger

import (
	"context"
	"errors"
	"log/slog"
	"testing"
)

func TestLoggerInit(t *testing.T) {
	err := Init()
	if err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := Sync(); err != nil {
			t.Errorf("failed to sync logger: %v", err)
		}
	}()

	logger := Get()
	if logger == nil {
		t.Fatal("logger is nil after initialization")
	}
}

func TestLoggerBasic(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	logger := Get()
	ctx := context.Background()
	logger.Debug(ctx, "debug message", String("k", "v"))
	logger.Info(ctx, "info message", Int("players", 300), Float64("latency", 1.5))
	logger.Warn(ctx, "warn message", Any("filters", map[string]int{"max_age": 25}))
	logger.Error(ctx, "error message", Error(errors.New("boom")))
}

func TestLoggerNamed(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	namedLogger := Named("dataset")
	if namedLogger == nil {
		t.Fatal("named logger is nil")
	}
	namedLogger.Info(context.Background(), "named message")
}

func TestLoggerLevels(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	SetLevel(slog.LevelWarn)
	defer SetLevel(slog.LevelInfo)

	if err := SetLevelString("debug"); err != nil {
		t.Fatalf("failed to set level from string: %v", err)
	}
	if err := SetLevelString("nonsense"); err == nil {
		t.Fatal("expected an error for an unknown level string")
	}
}
