package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "JSON", slog.LevelInfo)

	log.Debug("dropped")
	log.Info("query executed", "rows", 3)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "query executed", line["msg"])
	assert.Equal(t, float64(3), line["rows"])
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "text", slog.LevelWarn)

	log.Info("dropped")
	log.Warn("invalid device id", "device_id", "nope")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "invalid device id")
	assert.Contains(t, out, "device_id=nope")
}
