package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/meme-forge/internal/logger"
	"github.com/MKhiriev/meme-forge/models"
)

func newTestMemeRepo(t *testing.T) (*memeRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &memeRepository{DB: db, logger: logger.Nop()}, mock
}

func memeRow(rows *sqlmock.Rows, id int64, userID any, public bool, createdAt time.Time) *sqlmock.Rows {
	return rows.AddRow(id, userID, nil, "prompt", "enhanced", "https://img/1.png", "https://backend/1.png", true,
		public, "square", "", "", "", 2, 3, createdAt)
}

func TestMemeRepository_ListByUser(t *testing.T) {
	repo, mock := newTestMemeRepo(t)

	now := time.Now().UTC()
	rows := sqlmock.NewRows(memeColumns)
	memeRow(rows, 2, int64(1), false, now)
	memeRow(rows, 1, int64(1), true, now.Add(-time.Hour))

	mock.ExpectQuery("SELECT (.+) FROM memes WHERE user_id = \\$1 ORDER BY created_at DESC, id DESC").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	memes, err := repo.ListByUser(context.Background(), 1, models.Page{Limit: 50})
	require.NoError(t, err)
	require.Len(t, memes, 2)
	assert.Equal(t, int64(2), memes[0].ID)
	require.NotNil(t, memes[0].UserID)
	assert.Equal(t, int64(1), *memes[0].UserID)
	assert.Nil(t, memes[0].CharacterID)
	assert.Equal(t, "enhanced", memes[0].EnhancedPrompt)
	assert.True(t, memes[1].IsPublic)
}

func TestMemeRepository_ListPublic_WithUsername(t *testing.T) {
	repo, mock := newTestMemeRepo(t)

	rows := sqlmock.NewRows(append(append([]string{}, memeColumns...), "username"))
	rows.AddRow(int64(4), nil, nil, "p", "ep", "u", "s", true, true, "square", "", "", "", 0, 0, time.Now(), "")

	mock.ExpectQuery("SELECT (.+) FROM memes m LEFT JOIN users u").
		WithArgs(true).
		WillReturnRows(rows)

	memes, err := repo.ListPublic(context.Background(), models.Page{Limit: 20})
	require.NoError(t, err)
	require.Len(t, memes, 1)
	assert.Nil(t, memes[0].UserID)
	assert.Equal(t, "", memes[0].Username)
}

func TestMemeRepository_ListByUser_ScanError(t *testing.T) {
	repo, mock := newTestMemeRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM memes").WillReturnError(errors.New("boom"))

	_, err := repo.ListByUser(context.Background(), 1, models.Page{Limit: 50})
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestMemeRepository_FindPublicByID_NotFound(t *testing.T) {
	repo, mock := newTestMemeRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM memes m").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindPublicByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrMemeNotFound)
}

func TestMemeRepository_StatsByUser(t *testing.T) {
	repo, mock := newTestMemeRepo(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\), COALESCE\\(SUM\\(likes\\), 0\\), COALESCE\\(SUM\\(views\\), 0\\) FROM memes").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count", "likes", "views"}).AddRow(3, 10, 25))

	stats, err := repo.StatsByUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.DashboardStats{TotalMemes: 3, TotalLikes: 10, TotalViews: 25}, stats)
}

func TestMemeRepository_OwnerScopedUpdates(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		call     func(*memeRepository) error
		pattern  string
		wantErr  error
	}{
		{
			name:     "visibility updated",
			affected: 1,
			pattern:  "UPDATE memes SET is_public",
			call: func(r *memeRepository) error {
				return r.UpdateVisibility(context.Background(), 1, 2, true)
			},
		},
		{
			name:     "visibility of foreign meme",
			affected: 0,
			pattern:  "UPDATE memes SET is_public",
			call: func(r *memeRepository) error {
				return r.UpdateVisibility(context.Background(), 1, 3, true)
			},
			wantErr: ErrMemeNotFound,
		},
		{
			name:     "delete",
			affected: 1,
			pattern:  "DELETE FROM memes",
			call: func(r *memeRepository) error {
				return r.Delete(context.Background(), 1, 2)
			},
		},
		{
			name:     "delete missing",
			affected: 0,
			pattern:  "DELETE FROM memes",
			call: func(r *memeRepository) error {
				return r.Delete(context.Background(), 1, 2)
			},
			wantErr: ErrMemeNotFound,
		},
		{
			name:     "mark stored twice",
			affected: 0,
			pattern:  "UPDATE memes SET image_url",
			call: func(r *memeRepository) error {
				return r.MarkStored(context.Background(), 1, "https://cdn/1.png")
			},
			wantErr: ErrMemeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestMemeRepo(t)
			mock.ExpectExec(tt.pattern).WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := tt.call(repo)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMemeRepository_IncrementLikes(t *testing.T) {
	repo, mock := newTestMemeRepo(t)

	mock.ExpectQuery("UPDATE memes SET likes = likes \\+ 1").
		WithArgs(int64(5), true).
		WillReturnRows(sqlmock.NewRows([]string{"likes"}).AddRow(8))

	likes, err := repo.IncrementLikes(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 8, likes)
}

func TestMemeRepository_IncrementLikes_PrivateMeme(t *testing.T) {
	repo, mock := newTestMemeRepo(t)

	mock.ExpectQuery("UPDATE memes SET likes").
		WillReturnRows(sqlmock.NewRows([]string{"likes"}))

	_, err := repo.IncrementLikes(context.Background(), 5)
	assert.ErrorIs(t, err, ErrMemeNotFound)
}
