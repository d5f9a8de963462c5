package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "customer_id", cfg.Diff.KeyColumn)
		assert.Equal(t, "reports", cfg.Storage.Bucket)
		assert.Equal(t, 32, cfg.Server.BodyLimitMB)
	})

	t.Run("Environment Overrides", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9999")
		t.Setenv("DIFF_KEY_COLUMN", "account_id")
		t.Setenv("LOG_FORMAT", "json")

		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "9999", cfg.Server.Port)
		assert.Equal(t, "account_id", cfg.Diff.KeyColumn)
		assert.Equal(t, "json", cfg.Log.Format)
	})
}
