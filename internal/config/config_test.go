package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "gpt-4o", cfg.AI.Model)
	assert.Equal(t, 800, cfg.AI.MaxTokens)
	assert.Equal(t, 465, cfg.Mail.Port)
	assert.True(t, cfg.Mail.SSL)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_URI", "redis://cache:6379")
	t.Setenv("PUBLIC_BASE_URL", "https://brief.example.com/")
	t.Setenv("SESSION_TTL", "5m")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("EMAIL_USER", "reports@example.com")
	t.Setenv("EMAIL_PASS", "secret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "cache:6379", cfg.RedisAddr)
	assert.Equal(t, "https://brief.example.com", cfg.PublicBaseURL)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	assert.True(t, cfg.AI.IsEnabled())
	assert.True(t, cfg.Mail.IsEnabled())
	assert.Equal(t, "reports@example.com", cfg.Mail.Sender())
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
httpPort: "7070"
logLevel: debug
sessionTtl: 10m
ai:
  model: gpt-4o-mini
mail:
  host: smtp.example.com
  port: 587
  ssl: false
`), 0o600))
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.HTTPPort)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 10*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "gpt-4o-mini", cfg.AI.Model)
	assert.Equal(t, 800, cfg.AI.MaxTokens, "unset keys keep defaults")
	assert.Equal(t, "smtp.example.com", cfg.Mail.Host)
	assert.Equal(t, 587, cfg.Mail.Port)
	assert.False(t, cfg.Mail.SSL)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	t.Setenv("SHARE_TTL", "forever")
	_, err = Load("")
	assert.ErrorContains(t, err, "SHARE_TTL")
}
