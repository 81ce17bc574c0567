package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/axellelanca/linkboard/internal/config"
	customerrors "github.com/axellelanca/linkboard/internal/errors"
	"github.com/axellelanca/linkboard/internal/models"
	"github.com/axellelanca/linkboard/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *GormLinkRepository {
	t.Helper()
	db, err := storage.Open(config.DatabaseConfig{Driver: "sqlite", Name: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	require.NoError(t, storage.Migrate(db))
	t.Cleanup(func() { _ = storage.Close(db) })
	return NewLinkRepository(db)
}

func TestCreateAndGetLink(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	link := &models.Link{Title: "Example", URL: "http://example.com", Description: "desc"}
	require.NoError(t, repo.CreateLink(ctx, link))
	require.NotZero(t, link.ID)
	assert.False(t, link.CreatedAt.IsZero())

	got, err := repo.GetLinkByID(ctx, link.ID)
	require.NoError(t, err)
	assert.Equal(t, "Example", got.Title)
	assert.Equal(t, "http://example.com", got.URL)
	assert.Equal(t, "desc", got.Description)
}

func TestGetLinkByID_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetLinkByID(context.Background(), 42)
	assert.ErrorIs(t, err, customerrors.ErrLinkNotFound)
}

func TestListLinks_NewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"first", "second", "third"} {
		link := &models.Link{Title: title, URL: "http://example.com", Description: "d", CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, repo.CreateLink(ctx, link))
	}

	links, err := repo.ListLinks(ctx)
	require.NoError(t, err)
	require.Len(t, links, 3)
	assert.Equal(t, "third", links[0].Title)
	assert.Equal(t, "first", links[2].Title)

	count, err := repo.CountLinks(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}

func TestCreateLink_DuplicatesAreSeparateRows(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		require.NoError(t, repo.CreateLink(ctx, &models.Link{Title: "same", URL: "http://same.example", Description: "same"}))
	}

	count, err := repo.CountLinks(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}
