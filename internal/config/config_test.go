package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_FileWithDefaults(t *testing.T) {
	unsetEnv(t, "ARTIFACTS_TOKEN", "ARTIFACTS_DB_DSN", "ARTIFACTS_MAX_LOOP_ACTIONS", "ARTIFACTS_RETRY_MAX_ATTEMPTS")
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  token: secret\nscenario:\n  max_loop_actions: 50\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.API.Token)
	assert.Equal(t, "https://api.artifactsmmo.com", cfg.API.BaseURL)
	assert.Equal(t, 20*time.Second, cfg.API.Timeout)
	assert.Equal(t, time.Second, cfg.API.Retry.Backoff)
	assert.Zero(t, cfg.API.Retry.MaxAttempts)
	assert.Equal(t, 50, cfg.Scenario.MaxLoopActions)
	assert.Empty(t, cfg.Journal.DSN)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  token: from-file\n"), 0o600))
	t.Setenv("ARTIFACTS_TOKEN", "from-env")
	t.Setenv("ARTIFACTS_RETRY_MAX_ATTEMPTS", "5")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.API.Token)
	assert.Equal(t, uint(5), cfg.API.Retry.MaxAttempts)
}

func TestLoad_EnvOnlyWhenFileMissing(t *testing.T) {
	unsetEnv(t, "ARTIFACTS_MAX_LOOP_ACTIONS")
	t.Setenv("ARTIFACTS_TOKEN", "env-token")
	t.Setenv("ARTIFACTS_DB_DSN", "postgres://localhost/bot")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.API.Token)
	assert.Equal(t, "postgres://localhost/bot", cfg.Journal.DSN)
	assert.Equal(t, 1000, cfg.Scenario.MaxLoopActions)
}

func TestLoad_MissingToken(t *testing.T) {
	unsetEnv(t, "ARTIFACTS_TOKEN")
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Config{API: APIConfig{Token: "x", Timeout: time.Second}, Scenario: ScenarioConfig{MaxLoopActions: -1}}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}
