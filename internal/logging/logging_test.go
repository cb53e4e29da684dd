package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWritesJSONLines(t *testing.T) {
	opts := DefaultOptions()
	opts.File = filepath.Join(t.TempDir(), "nested", "app.log")
	opts.Level = "warn"

	log, closeFn, err := New(opts)
	require.NoError(t, err)

	log.Info("dropped below level")
	log.Warn("preference write failed", zap.String("key", "darkMode"))
	require.NoError(t, closeFn())

	data, err := os.ReadFile(opts.File)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "preference write failed", entry["message"])
	assert.Equal(t, "darkMode", entry["key"])
	assert.Contains(t, entry, "timestamp")
}

func TestNewWithoutFileIsNop(t *testing.T) {
	log, closeFn, err := New(Options{})
	require.NoError(t, err)
	log.Error("nowhere")
	assert.NoError(t, closeFn())
}

func TestNewRejectsBadLevel(t *testing.T) {
	opts := DefaultOptions()
	opts.File = filepath.Join(t.TempDir(), "app.log")
	opts.Level = "loud"

	_, _, err := New(opts)
	assert.Error(t, err)
}

func TestDefaultFile(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	path, err := DefaultFile()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/xdg/tutordesk/tutordesk.log", path)
}
