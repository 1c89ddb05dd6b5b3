package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFiltering(t *testing.T) {
	dir := t.TempDir()
	appLog := filepath.Join(dir, "logs", "app.log")
	accessLog := filepath.Join(dir, "logs", "access.log")

	require.NoError(t, InitGlobalLoggers(appLog, accessLog, "warn"))
	t.Cleanup(CloseLogFiles)

	assert.Equal(t, "WARN", Level())

	Debug("debug line %d", 1)
	Info("info line %d", 2)
	Warn("warn line %d", 3)
	AccessInfo("GET /api/profiles 200")

	data, err := os.ReadFile(appLog)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "debug line 1")
	assert.NotContains(t, string(data), "info line 2")
	assert.Contains(t, string(data), "WARN: warn line 3")

	access, err := os.ReadFile(accessLog)
	require.NoError(t, err)
	assert.Contains(t, string(access), "GET /api/profiles 200")
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, InitGlobalLoggers(filepath.Join(dir, "app.log"), filepath.Join(dir, "access.log"), "chatty"))
	t.Cleanup(CloseLogFiles)

	assert.Equal(t, "INFO", Level())
}
