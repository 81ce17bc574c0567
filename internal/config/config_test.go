package config

import (
	"os"
	"path/filepath"
	"testing"

	customerrors "github.com/axellelanca/linkboard/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFrom_Defaults(t *testing.T) {
	cfg, err := LoadConfigFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "linkboard.db", cfg.Database.Name)
	assert.True(t, cfg.Monitor.Enabled)
	assert.Equal(t, "5m0s", cfg.MonitorInterval().String())
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfigFrom_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("server:\n  port: 9090\ndatabase:\n  name: board.db\nmonitor:\n  enabled: false\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o644))

	t.Setenv("SERVER_PORT", "7070")

	cfg, err := LoadConfigFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port, "environment wins over the file")
	assert.Equal(t, "board.db", cfg.Database.Name)
	assert.False(t, cfg.Monitor.Enabled)
}

func TestLoadConfigFrom_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [port"), 0o644))

	_, err := LoadConfigFrom(dir)
	var loadErr customerrors.ErrConfigLoad
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, dir, loadErr.Path)
}

func TestLoadConfigFrom_RejectsBadDatabaseSettings(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("DATABASE_DRIVER", "oracle")
		_, err := LoadConfigFrom(t.TempDir())
		assert.ErrorIs(t, err, customerrors.ErrUnsupportedDriver)
	})

	t.Run("postgres without dsn", func(t *testing.T) {
		t.Setenv("DATABASE_DRIVER", "postgres")
		_, err := LoadConfigFrom(t.TempDir())
		assert.ErrorContains(t, err, "database.dsn")
	})
}
