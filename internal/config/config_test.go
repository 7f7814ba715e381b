package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"domainsync/internal/config"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "environment: production\n"))
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "us-east-1", cfg.Registrar.Region)
	require.Equal(t, 100, cfg.Registrar.PageSize)
	require.Equal(t, 31*24*time.Hour, cfg.Registrar.ExpiryGracePeriod)
	require.Equal(t, "19:00", cfg.Sync.DailyAt)
	require.False(t, cfg.Sync.RunOnStart)
	require.Equal(t, 5, cfg.Sync.ContactSyncMaxAttempts)
	require.Equal(t, 10*time.Second, cfg.Notifications.Timeout)
	require.Empty(t, cfg.Notifications.SlackEndpoint)
	require.Equal(t, "domainsync", cfg.Database.DatabaseName)
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	path := writeConfig(t, `
registrar:
  pageSize: 20
  expiryGracePeriod: 48h
sync:
  dailyAt: "06:15"
notifications:
  slackEndpoint: https://hooks.slack.com/services/T000/B000/XXXX
`)
	t.Setenv("SYNC_DAILY_AT", "07:30")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 20, cfg.Registrar.PageSize)
	require.Equal(t, 48*time.Hour, cfg.Registrar.ExpiryGracePeriod)
	require.Equal(t, "07:30", cfg.Sync.DailyAt)
	require.Equal(t, "https://hooks.slack.com/services/T000/B000/XXXX", cfg.Notifications.SlackEndpoint)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
