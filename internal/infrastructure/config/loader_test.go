package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
server:
  port: 9090
  readTimeout: 7
database:
  driver: "sqlite"
  database: "ledger.db"
  connMaxLifetime: 2
payment:
  payeeVPA: "shop@upi"
  payeeName: "Shop"
email:
  timeout: 3
cache:
  groupListTTL: 45
`

func writeConfig(t *testing.T, env, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(content), 0o600))
	return dir
}

func TestLoadConfig(t *testing.T) {
	t.Run("reads file and applies defaults", func(t *testing.T) {
		// Arrange
		dir := writeConfig(t, "staging", testYAML)
		t.Setenv("VM_ENV", "Staging")
		t.Setenv("VM_CONFIG_DIR", dir)

		// Act
		cfg, err := LoadConfig()

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "staging", cfg.Environment)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, 7*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
		assert.Equal(t, "sqlite", cfg.Database.Driver)
		assert.Equal(t, 2*time.Minute, cfg.Database.ConnMaxLifetime)
		assert.Equal(t, "shop@upi", cfg.Payment.PayeeVPA)
		assert.Equal(t, "INR", cfg.Payment.Currency)
		assert.Equal(t, 24*time.Hour, cfg.Payment.IntentTTL)
		assert.Equal(t, 256, cfg.Payment.QRSize)
		assert.Equal(t, 3*time.Second, cfg.Email.Timeout)
		assert.Equal(t, 45*time.Second, cfg.Cache.GroupListTTL)
		assert.Equal(t, 6, cfg.Group.RoomCodeLength)
		assert.Equal(t, 5, cfg.Group.MaxRoomCodeAttempts)
		assert.Equal(t, "/metrics", cfg.Metrics.Path)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("secret overrides from environment", func(t *testing.T) {
		// Arrange
		dir := writeConfig(t, "staging", testYAML)
		t.Setenv("VM_ENV", "staging")
		t.Setenv("VM_CONFIG_DIR", dir)
		t.Setenv("VM_DB_PASSWORD", "s3cret")
		t.Setenv("VM_AUTH_JWT_SECRET", "jwt-secret")
		t.Setenv("VM_EMAIL_API_KEY", "xkeysib-123")
		t.Setenv("VM_CACHE_REDIS_URL", "redis://cache:6379/1")
		t.Setenv("VM_CACHE_ENABLED", "true")
		t.Setenv("VM_SERVER_PORT", "7070")

		// Act
		cfg, err := LoadConfig()

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "s3cret", cfg.Database.Password)
		assert.Equal(t, "jwt-secret", cfg.Auth.JWTSecret)
		assert.Equal(t, "xkeysib-123", cfg.Email.APIKey)
		assert.Equal(t, "redis://cache:6379/1", cfg.Cache.RedisURL)
		assert.True(t, cfg.Cache.Enabled)
		assert.Equal(t, 7070, cfg.Server.Port)
	})

	t.Run("missing file", func(t *testing.T) {
		// Arrange
		t.Setenv("VM_ENV", "nowhere")
		t.Setenv("VM_CONFIG_DIR", t.TempDir())

		// Act
		cfg, err := LoadConfig()

		// Assert
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("VM_TEST_INT", "42")
	t.Setenv("VM_TEST_BAD", "forty")

	assert.Equal(t, 42, getEnvInt("VM_TEST_INT", 1))
	assert.Equal(t, 1, getEnvInt("VM_TEST_BAD", 1))
	assert.Equal(t, 1, getEnvInt("VM_TEST_UNSET", 1))
}
