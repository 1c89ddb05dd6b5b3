package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestLoadReadsFile(t *testing.T) {
	path := writeConfig(t, `
database:
  path: /tmp/p.db
  seed_defaults: false
server:
  port: "9000"
  compress_level: 7
logging:
  level: debug
metrics:
  enabled: false
`)
	cfg, used, err := Load(path, Overrides{})
	require.NoError(t, err)
	assert.Contains(t, used, path)
	assert.Equal(t, "/tmp/p.db", cfg.Database.Path)
	assert.False(t, cfg.Database.SeedDefaults)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 7, cfg.Server.CompressLevel)
	assert.Equal(t, "DEBUG", cfg.Logging.Level)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadPrecedence(t *testing.T) {
	path := writeConfig(t, "server:\n  port: \"9000\"\nlogging:\n  level: WARN\n")
	t.Setenv("PROFILEKIT_SERVER_PORT", "9100")

	cfg, _, err := Load(path, Overrides{LogLevel: "error", DBPath: "/tmp/flag.db"})
	require.NoError(t, err)
	assert.Equal(t, "9100", cfg.Server.Port)
	assert.Equal(t, "ERROR", cfg.Logging.Level)
	assert.Equal(t, "/tmp/flag.db", cfg.Database.Path)
	assert.True(t, cfg.Database.SeedDefaults)
	assert.Equal(t, 5, cfg.Server.CompressLevel)
}

func TestLoadExpandsTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg, _, err := Load(writeConfig(t, "{}\n"), Overrides{DBPath: "~/profiles.db"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "profiles.db"), cfg.Database.Path)
}

func TestLoadRejectsBadInput(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), Overrides{})
	assert.Error(t, err)

	_, _, err = Load(writeConfig(t, "server:\n  compress_level: 12\n"), Overrides{})
	assert.ErrorContains(t, err, "compress_level")
}
