package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/meme-forge/internal/logger"
	"github.com/MKhiriev/meme-forge/models"
)

func newTestLibraryRepo(t *testing.T) (*libraryRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &libraryRepository{DB: db, logger: logger.Nop()}, mock
}

func TestLibraryRepository_CreateCharacter(t *testing.T) {
	repo, mock := newTestLibraryRepo(t)

	now := time.Now().UTC()
	mock.ExpectQuery("INSERT INTO characters").
		WithArgs(int64(1), "Doge", "shiba", "flat", "", true, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	created, err := repo.CreateCharacter(context.Background(), models.Character{
		UserID: 1, Name: "Doge", Description: "shiba", StylePrompt: "flat", CreatedAt: now,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.True(t, created.IsActive)
}

func TestLibraryRepository_FindCharacterByID_NotFound(t *testing.T) {
	repo, mock := newTestLibraryRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM characters").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindCharacterByID(context.Background(), 3)
	assert.ErrorIs(t, err, ErrCharacterNotFound)
}

func TestLibraryRepository_FindAssetsByIDs_EmptyIDs(t *testing.T) {
	repo, mock := newTestLibraryRepo(t)

	assets, err := repo.FindAssetsByIDs(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Empty(t, assets)
	// no query is issued
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLibraryRepository_FindAssetsByIDs(t *testing.T) {
	repo, mock := newTestLibraryRepo(t)

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT (.+) FROM assets WHERE id IN \\(\\$1,\\$2\\)").
		WithArgs(int64(4), int64(5), true, int64(1)).
		WillReturnRows(sqlmock.NewRows(assetColumns).
			AddRow(4, 1, "BTC", "https://img/btc.png", "coin", "orange coin", true, now))

	assets, err := repo.FindAssetsByIDs(context.Background(), 1, []int64{4, 5})
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, "BTC: orange coin", assets[0].Context())
}

func TestLibraryRepository_ListCharactersByUser(t *testing.T) {
	repo, mock := newTestLibraryRepo(t)

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT (.+) FROM characters WHERE is_active = \\$1 AND user_id = \\$2 ORDER BY created_at DESC").
		WithArgs(true, int64(1)).
		WillReturnRows(sqlmock.NewRows(characterColumns).
			AddRow(2, 1, "B", "", "", "", true, now).
			AddRow(1, 1, "A", "", "", "", true, now.Add(-time.Minute)))

	characters, err := repo.ListCharactersByUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, characters, 2)
	assert.Equal(t, "B", characters[0].Name)
}
