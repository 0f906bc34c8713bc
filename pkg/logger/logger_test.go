package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&Config{Level: InfoLevel, Output: &buf})

	l.WithFields(map[string]interface{}{"component": "seed"}).
		Error(errors.New("boom"), "table failed", "table", "areas")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "table failed", entry["message"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "areas", entry["table"])
	assert.Equal(t, "seed", entry["component"])
}

func TestLoggerLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&Config{Level: WarnLevel, Output: &buf})

	l.Info("hidden")
	assert.Zero(t, buf.Len())

	l.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestWithContextRequestID(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&Config{Level: InfoLevel, Output: &buf})

	ctx := context.WithValue(context.Background(), RequestIDKey, "rid-1")
	l.WithContext(ctx).Info("hello")

	assert.Contains(t, buf.String(), `"request_id":"rid-1"`)
}
