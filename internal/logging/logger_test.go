package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   slog.Level
		wantOK bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"warning", slog.LevelWarn, true},
		{" error ", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLevel(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestNew_JSONHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn", "prod")

	logger.Info("hidden")
	logger.Warn("shown", slog.Int("day", 3))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, float64(3), entry["day"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNew_TintHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "debug", "DEV")

	logger.Debug("tinted", slog.String("key", "value"))

	// JSON ではなくテキストで出力される
	assert.Contains(t, buf.String(), "tinted")
	assert.Contains(t, buf.String(), "value")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestNew_UnknownLevelWarns(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "verbose", "")
	assert.Contains(t, buf.String(), "Unknown log level")
}
