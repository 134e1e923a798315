package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestLevelTag(t *testing.T) {
	assert.Equal(t, "ERROR", levelTag(slog.LevelError))
	assert.Equal(t, "WARN ", levelTag(slog.LevelWarn))
	assert.Equal(t, "INFO ", levelTag(slog.LevelInfo))
	assert.Equal(t, "DEBUG", levelTag(slog.LevelDebug))
}

func TestConsoleHandler(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "info", Output: &buf})

	l.Debug("hidden")
	l.With("stage", "first").Info("spawned")
	l.WithGroup("player").Info("moved", "x", 1.5)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	require.Equal(t, 2, strings.Count(out, "\n"))
	assert.Contains(t, out, "INFO  spawned  stage=first")
	assert.Contains(t, out, "INFO  moved  player.x=1.5")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "debug", Format: "json", Output: &buf})

	l.Debug("tick", "n", 3)
	assert.Contains(t, buf.String(), `"msg":"tick"`)
	assert.Contains(t, buf.String(), `"n":3`)
}

func TestInit_SetsDefault(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	defer slog.SetDefault(prev)

	l := Init(Config{Level: "info", Format: "text", Output: &buf})
	assert.Same(t, l, L())

	slog.Info("via default")
	assert.Contains(t, buf.String(), "via default")
}
