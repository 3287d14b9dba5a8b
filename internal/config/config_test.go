package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite3")
	t.Setenv("CACHE_TTL_MINUTES", "15")
	t.Setenv("TOKEN_TTL_HOURS", "2")
	t.Setenv("DB_CONN_MAX_LIFETIME_MINUTES", "7")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "sqlite3", cfg.DBDriver)
	assert.Equal(t, 15*time.Minute, cfg.CacheTTL())
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL())
	assert.Equal(t, 7*time.Minute, cfg.ConnMaxLifetime())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "connectz.yml")
	require.NoError(t, os.WriteFile(path, []byte(
		"kafka_topic: verdicts-test\nledger_retention_days: 9\nmax_upload_bytes: 2048\n"), 0o644))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("LEDGER_RETENTION_DAYS", "3")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "verdicts-test", cfg.KafkaTopic)
	assert.Equal(t, int64(2048), cfg.MaxUploadBytes)
	assert.Equal(t, 3, cfg.LedgerRetentionDays, "environment overrides the file")
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yml"))
	_, err := LoadConfig()
	assert.Error(t, err)
}
