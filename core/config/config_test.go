package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"fips/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := config.LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "localhost", cfg.Server.Host)
		assert.Equal(t, 8000, cfg.Server.Port)
		assert.Equal(t, ".", cfg.Server.Root)
		assert.True(t, cfg.Server.ReuseAddress)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "console", cfg.Log.Format)
		assert.Equal(t, "auto", cfg.Log.Color)
		assert.Equal(t, 60, cfg.SDK.DownloadTimeoutSeconds)
		assert.False(t, cfg.Storage.Enabled)
		assert.Equal(t, "fips-sdks", cfg.Storage.Bucket)
		assert.Equal(t, "sqlite", cfg.Database.Driver)
	})

	t.Run("EnvironmentOverrides", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("SERVER_REUSE_ADDRESS", "false")
		t.Setenv("STORAGE_ENABLED", "true")
		t.Setenv("SDK_DIR", "/opt/fips-sdks")

		cfg, err := config.LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.Port)
		assert.False(t, cfg.Server.ReuseAddress)
		assert.True(t, cfg.Storage.Enabled)
		assert.Equal(t, "/opt/fips-sdks", cfg.SDK.Dir)
	})

	t.Run("DotEnvFile", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_HOST=0.0.0.0\nLOG_LEVEL=debug\n"), 0o644))
		t.Cleanup(func() {
			os.Unsetenv("SERVER_HOST")
			os.Unsetenv("LOG_LEVEL")
		})

		cfg, err := config.LoadConfig(dir)
		require.NoError(t, err)

		assert.Equal(t, "0.0.0.0", cfg.Server.Host)
		assert.Equal(t, "debug", cfg.Log.Level)
	})
}
