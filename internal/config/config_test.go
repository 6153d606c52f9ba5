package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"dsa_tracker/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	return dir
}

func TestLoadConfig(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: ":9090"
remote:
  base_url: "http://remote.test/api/"
  timeout: 3s
  toggle_mode: "toggle"
database:
  driver: "postgres"
  url: "postgres://localhost/dsa"
jwt:
  secret_key: "secret"
`)
	require.NoError(t, config.LoadConfig(dir))

	cfg := config.Cfg
	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "http://remote.test/api", cfg.Remote.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Remote.Timeout)
	assert.Equal(t, config.ToggleModeToggle, cfg.Remote.ToggleMode)
	assert.Equal(t, config.DefaultRemoteRetryMax, cfg.Remote.RetryMax)
	assert.Equal(t, config.DefaultRemoteRetryWait, cfg.Remote.RetryWait)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, config.DefaultSessionTTL, cfg.Session.TTL)
	assert.Equal(t, config.AppName, cfg.JWT.Issuer)
}

func TestLoadConfig_EnvOverridesAndFallbacks(t *testing.T) {
	dir := writeConfig(t, `
remote:
  base_url: "http://remote.test"
  timeout: 0s
`)
	t.Setenv("APP_REMOTE_TOGGLE_MODE", "flip")
	t.Setenv("APP_JWT_SECRET_KEY", "from-env")

	require.NoError(t, config.LoadConfig(dir))

	cfg := config.Cfg
	assert.Equal(t, config.ToggleModeSet, cfg.Remote.ToggleMode, "unknown mode falls back to set")
	assert.Equal(t, config.DefaultRemoteTimeout, cfg.Remote.Timeout)
	assert.Equal(t, "from-env", cfg.JWT.SecretKey)
	assert.Equal(t, config.DefaultServerPort, cfg.Server.Port)
}
