package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestConfig creates a config tree under a temp WORKDIR and returns a
// cleanup function restoring the previous WORKDIR.
func writeTestConfig(t *testing.T, content string) func() {
	t.Helper()
	tempDir := t.TempDir()

	configDir := filepath.Join(tempDir, "appconfig")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "default.yaml"), []byte(content), 0644))

	oldWorkdir := os.Getenv("WORKDIR")
	require.NoError(t, os.Setenv("WORKDIR", tempDir))

	return func() {
		if oldWorkdir != "" {
			_ = os.Setenv("WORKDIR", oldWorkdir)
		} else {
			_ = os.Unsetenv("WORKDIR")
		}
	}
}

func TestLoadConfig(t *testing.T) {
	cleanup := writeTestConfig(t, `app:
  name: "startrack-test"
  version: "0.0.1"
  environment: "test"
server:
  port: 9090
cache:
  driver: "memory"
  inmemory:
    defaultExpiration: -1
    cleanupInterval: -1
superhero:
  url: "https://example.test/all.json"
  timeout: "2s"
  retryCount: 1
`)
	defer cleanup()

	cfg, err := LoadConfig("default")
	require.NoError(t, err)

	assert.Equal(t, "startrack-test", cfg.App.Name)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Cache.Driver)
	assert.Equal(t, -1, cfg.Cache.InMemory.DefaultExpiration)
	assert.Equal(t, "https://example.test/all.json", cfg.Superhero.URL)
	assert.Equal(t, 2*time.Second, cfg.Superhero.Timeout)
	assert.Equal(t, 1, cfg.Superhero.RetryCount)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cleanup := writeTestConfig(t, `app:
  name: "startrack-test"
`)
	defer cleanup()

	cfg, err := LoadConfig("default")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Cache.Driver)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "https://akabab.github.io/superhero-api/api/all.json", cfg.Superhero.URL)
	assert.Equal(t, 10*time.Second, cfg.Superhero.Timeout)
	assert.Equal(t, 3, cfg.Superhero.RetryCount)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cleanup := writeTestConfig(t, "app: {}\n")
	defer cleanup()

	_, err := LoadConfig("nonexistent")
	assert.Error(t, err)
}
