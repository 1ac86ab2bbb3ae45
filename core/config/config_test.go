package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"storage-sdk/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := config.LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "http://localhost:8080", cfg.Client.BaseURL)
		assert.Equal(t, 30, cfg.Client.TimeoutSeconds)
		assert.True(t, cfg.Client.TLSVerify)
		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("EnvironmentOverrides", func(t *testing.T) {
		t.Setenv("CLIENT_BASE_URL", "https://storage.example.com")
		t.Setenv("CLIENT_TLS_VERIFY", "false")
		t.Setenv("SERVER_PORT", "9090")

		cfg, err := config.LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "https://storage.example.com", cfg.Client.BaseURL)
		assert.False(t, cfg.Client.TLSVerify)
		assert.Equal(t, "9090", cfg.Server.Port)
	})

	t.Run("DotEnvFile", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CLIENT_API_KEY=from-dotenv\nLOG_LEVEL=debug\n"), 0o600))
		t.Cleanup(func() {
			os.Unsetenv("CLIENT_API_KEY")
			os.Unsetenv("LOG_LEVEL")
		})

		cfg, err := config.LoadConfig(dir)
		require.NoError(t, err)

		assert.Equal(t, "from-dotenv", cfg.Client.APIKey)
		assert.Equal(t, "debug", cfg.Log.Level)
	})
}
