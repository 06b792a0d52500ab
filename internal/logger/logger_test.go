package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/focusflow/focusflow/internal/config"
)

func TestLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, Level("DEBUG"))
	assert.Equal(t, slog.LevelWarn, Level("warn"))
	assert.Equal(t, slog.LevelError, Level("error"))
	assert.Equal(t, slog.LevelInfo, Level("verbose"))
}

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer

	l := New(&buf, slog.LevelInfo)
	l.Debug("hidden")
	l.Info("task added", "id", 7)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "task added", entry["msg"])
	assert.EqualValues(t, 7, entry["id"])
}

func TestWriterCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log", "focusflow.log")

	w, err := Writer(config.LogConfig{MaxSize: 1}, path)
	require.NoError(t, err)

	_, err = w.Write([]byte("hello\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.FileExists(t, path)
}
