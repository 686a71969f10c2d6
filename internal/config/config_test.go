package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macizomedia/editorBot/internal/config"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "memory", cfg.Store)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Empty(t, cfg.Catalog.URL, "no remote catalog by default")
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editorbot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level: debug
store: redis
redis:
  addr: redis.internal:6379
  ttl_seconds: 3600
catalog:
  url: https://catalog.internal
  timeout_seconds: 3
http:
  port: "9090"
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "redis", cfg.Store)
	assert.Equal(t, "redis.internal:6379", cfg.Redis.Addr)
	assert.Equal(t, 3600, cfg.Redis.TTLSeconds)
	assert.Equal(t, "https://catalog.internal", cfg.Catalog.URL)
	assert.Equal(t, 3, cfg.Catalog.TimeoutSeconds)
	assert.Equal(t, "9090", cfg.HTTP.Port)
}

func TestLoad_PartialFileKeepsRemainingDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editorbot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "memory", cfg.Store)
	assert.Equal(t, 10, cfg.Catalog.TimeoutSeconds)
}

func TestLoad_EnvOverridesCatalogURL(t *testing.T) {
	t.Setenv("TEMPLATE_API_URL", "https://override.example")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "https://override.example", cfg.Catalog.URL)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editorbot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: [unclosed"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}
