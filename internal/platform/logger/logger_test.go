package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardsmith/cardsmith/internal/config"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name         string
		logLevel     string
		debugEnabled bool
	}{
		{name: "debug level", logLevel: "debug", debugEnabled: true},
		{name: "info level", logLevel: "info", debugEnabled: false},
		{name: "warn level", logLevel: "warn", debugEnabled: false},
		{name: "error level", logLevel: "error", debugEnabled: false},
		{name: "case insensitive", logLevel: "DEBUG", debugEnabled: true},
		{name: "invalid level falls back to info", logLevel: "trace", debugEnabled: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := Setup(config.ServerConfig{Port: 8080, LogLevel: tt.logLevel})

			require.NotNil(t, logger)
			assert.Equal(t, tt.debugEnabled, logger.Enabled(context.Background(), slog.LevelDebug))
			assert.True(t, logger.Enabled(context.Background(), slog.LevelError))
		})
	}
}
