package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestSourceLevelHandler(t *testing.T) {
	tests := []struct {
		name             string
		level            slog.Level
		sourceLevels     []slog.Level
		shouldHaveSource bool
	}{
		{
			name:             "info without source",
			level:            slog.LevelInfo,
			sourceLevels:     []slog.Level{slog.LevelWarn, slog.LevelError},
			shouldHaveSource: false,
		},
		{
			name:             "warn with source",
			level:            slog.LevelWarn,
			sourceLevels:     []slog.Level{slog.LevelWarn, slog.LevelError},
			shouldHaveSource: true,
		},
		{
			name:             "error with source",
			level:            slog.LevelError,
			sourceLevels:     []slog.Level{slog.LevelWarn, slog.LevelError},
			shouldHaveSource: true,
		},
		{
			name:             "debug without source",
			level:            slog.LevelDebug,
			sourceLevels:     []slog.Level{slog.LevelWarn, slog.LevelError},
			shouldHaveSource: false,
		},
		{
			name:             "info with source enabled for all levels",
			level:            slog.LevelInfo,
			sourceLevels:     []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError},
			shouldHaveSource: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			baseHandler := slog.NewTextHandler(&buf, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: false,
			})
			handler := NewSourceLevelHandler(baseHandler, tt.sourceLevels...)

			log := slog.New(handler)
			log.Log(context.Background(), tt.level, "test message")

			hasSource := strings.Contains(buf.String(), "source=")
			if hasSource != tt.shouldHaveSource {
				t.Errorf("level %v: source attr present = %v, want %v (output %q)",
					tt.level, hasSource, tt.shouldHaveSource, buf.String())
			}
		})
	}
}
