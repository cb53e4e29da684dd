package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/tutordesk/internal/state"
)

func isolate(t *testing.T) (dataHome, configHome string) {
	t.Helper()
	root := t.TempDir()
	dataHome = filepath.Join(root, "data")
	configHome = filepath.Join(root, "config")
	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Setenv("XDG_CONFIG_HOME", configHome)
	for _, k := range []string{"TUTORDESK_DB", "TUTORDESK_LOG_FILE", "TUTORDESK_LOG_LEVEL", "TUTORDESK_VIEW"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return dataHome, configHome
}

func TestLoadDefaults(t *testing.T) {
	dataHome, _ := isolate(t)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataHome, "tutordesk", "tutordesk.db"), cfg.DBPath)
	assert.Equal(t, filepath.Join(dataHome, "tutordesk", "tutordesk.log"), cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.View)
	assert.Empty(t, cfg.File)
}

func TestLoadPrecedence(t *testing.T) {
	_, configHome := isolate(t)
	dir := filepath.Join(configHome, "tutordesk")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(
		"db: /from/file.db\nlog-level: debug\nview: analytics\n"), 0o644))

	t.Setenv("TUTORDESK_LOG_LEVEL", "warn")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--view", "Profile"}))

	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, "/from/file.db", cfg.DBPath)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, state.ViewProfile, cfg.View)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), cfg.File)

	opts := cfg.Logging()
	assert.Equal(t, "warn", opts.Level)
	assert.Equal(t, cfg.LogFile, opts.File)
}

func TestLoadRejectsUnknownView(t *testing.T) {
	isolate(t)
	t.Setenv("TUTORDESK_VIEW", "settings")

	_, err := Load(nil)
	assert.ErrorContains(t, err, `unknown view "settings"`)
}
