package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/niksmo/techtrove/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := config.LoadFile("")
		require.NoError(t, err)

		assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
		assert.Equal(t, ":8080", cfg.HTTPServerAddr)
		assert.Equal(t, "https://fakestoreapi.com/products", cfg.Catalog.URL)
		assert.Equal(t, 10*time.Second, cfg.Catalog.Timeout)
		assert.Equal(t, 1, cfg.Catalog.MaxAttempts)
		assert.Equal(t, 2*time.Second, cfg.Price.Delay)
		assert.Equal(t, "discount", cfg.Price.DiscountCookie)
	})

	t.Run("FileOverridesDefaults", func(t *testing.T) {
		path := writeConfig(t, `
log_level: debug
http_server_addr: "127.0.0.1:9000"
catalog:
  url: "http://catalog.local/products"
  timeout: 3s
  max_attempts: 3
price:
  delay: 500ms
`)
		cfg, err := config.LoadFile(path)
		require.NoError(t, err)

		assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
		assert.Equal(t, "127.0.0.1:9000", cfg.HTTPServerAddr)
		assert.Equal(t, "http://catalog.local/products", cfg.Catalog.URL)
		assert.Equal(t, 3*time.Second, cfg.Catalog.Timeout)
		assert.Equal(t, 3, cfg.Catalog.MaxAttempts)
		assert.Equal(t, 500*time.Millisecond, cfg.Price.Delay)
		assert.Equal(t, "discount", cfg.Price.DiscountCookie)
	})

	t.Run("UnknownKey", func(t *testing.T) {
		path := writeConfig(t, "unknown_key: 1\n")
		_, err := config.LoadFile(path)
		assert.Error(t, err)
	})

	t.Run("InvalidLogLevel", func(t *testing.T) {
		path := writeConfig(t, "log_level: loud\n")
		_, err := config.LoadFile(path)
		assert.Error(t, err)
	})

	t.Run("InvalidAttempts", func(t *testing.T) {
		path := writeConfig(t, "catalog:\n  max_attempts: 0\n")
		_, err := config.LoadFile(path)
		assert.Error(t, err)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := config.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
