package adapter

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "https://www.omdbapi.com", cfg.OMDb.BaseURL)
	assert.Equal(t, 300*time.Millisecond, cfg.Search.Debounce)
	assert.Equal(t, 50*time.Millisecond, cfg.UI.ScrollDebounce)
	assert.Equal(t, 150, cfg.UI.CompactAbove)
	assert.Equal(t, 50, cfg.UI.ExpandBelow)
	assert.Len(t, cfg.Search.LatestSubjects, 8)
	assert.False(t, cfg.IsConfigured())
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
omdb:
  api_key: from-file
  timeout: 3s
search:
  debounce: 500ms
ui:
  theme: light
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("MARQUEE_UI_COMPACT_ABOVE", "200")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.OMDb.APIKey)
	assert.Equal(t, 3*time.Second, cfg.OMDb.Timeout)
	assert.Equal(t, 500*time.Millisecond, cfg.Search.Debounce)
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.Equal(t, 200, cfg.UI.CompactAbove)
	assert.Equal(t, 50, cfg.UI.ExpandBelow, "untouched keys keep defaults")
	assert.True(t, cfg.IsConfigured())
}

func TestLoadConfig_EnvAPIKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  theme: dark\n"), 0o644))
	t.Setenv("MARQUEE_OMDB_API_KEY", "env-key")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.OMDb.APIKey)
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.OMDb.APIKey = "abc123"
	cfg.UI.ToastDuration = 2 * time.Second
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "abc123", loaded.OMDb.APIKey)
	assert.Equal(t, 2*time.Second, loaded.UI.ToastDuration)
	assert.Equal(t, cfg.Search.LatestSubjects, loaded.Search.LatestSubjects)
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"Error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLogLevel(in), in)
	}
}

func TestSetupLogger_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "marquee.log")

	logger, closer, err := SetupLogger(&LoggingConfig{File: path, Level: "debug"})
	require.NoError(t, err)
	logger.Info("hello", "k", "v")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestSetupLogger_Disabled(t *testing.T) {
	logger, closer, err := SetupLogger(&LoggingConfig{File: "-"})
	require.NoError(t, err)
	assert.NotNil(t, logger)
	assert.NoError(t, closer.Close())
}
