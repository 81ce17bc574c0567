package storage

import (
	"path/filepath"
	"testing"

	"github.com/axellelanca/linkboard/internal/config"
	customerrors "github.com/axellelanca/linkboard/internal/errors"
	"github.com/axellelanca/linkboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAndMigrate_SQLite(t *testing.T) {
	db, err := Open(config.DatabaseConfig{Driver: "sqlite", Name: filepath.Join(t.TempDir(), "links.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, Migrate(db))
	assert.True(t, db.Migrator().HasTable(&models.Link{}))
	assert.True(t, db.Migrator().HasColumn(&models.Link{}, "description"))
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Driver: "mysql"})
	assert.ErrorIs(t, err, customerrors.ErrUnsupportedDriver)
}
