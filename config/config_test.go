package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		path := writeConfig(t, `
server:
  url: http://pixhaven.example.com
  timeout: 10
auth:
  token: config-token
safety:
  dry_run: true
  confirm_delete: false
watch:
  interval: 5
logging:
  level: debug
  format: json
`)

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "http://pixhaven.example.com", cfg.Server.URL)
		assert.Equal(t, 10, cfg.Server.Timeout)
		assert.Equal(t, "config-token", cfg.Auth.Token)
		assert.True(t, cfg.Safety.DryRun)
		assert.False(t, cfg.Safety.ConfirmDelete)
		assert.Equal(t, 5, cfg.Watch.Interval)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "json", cfg.Logging.Format)
	})

	t.Run("defaults fill the gaps", func(t *testing.T) {
		path := writeConfig(t, `
logging:
  level: warn
`)

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, DefaultServerURL, cfg.Server.URL)
		assert.Equal(t, 30, cfg.Server.Timeout)
		assert.Equal(t, 30, cfg.Watch.Interval)
		assert.True(t, cfg.Safety.ConfirmDelete)
		assert.Equal(t, "warn", cfg.Logging.Level)
		assert.Equal(t, "console", cfg.Logging.Format)
		assert.True(t, cfg.Logging.Color)
	})

	t.Run("explicit path must exist", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("invalid logging level", func(t *testing.T) {
		path := writeConfig(t, `
logging:
  level: loud
`)
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid logging level")
	})

	t.Run("invalid logging format", func(t *testing.T) {
		path := writeConfig(t, `
logging:
  format: xml
`)
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid logging format")
	})

	t.Run("non-positive timeout rejected", func(t *testing.T) {
		path := writeConfig(t, `
server:
  timeout: 0
`)
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.timeout must be positive")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "server: [not: valid")
		_, err := Load(path)
		require.Error(t, err)
	})
}
