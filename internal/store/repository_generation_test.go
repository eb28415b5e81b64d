package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/meme-forge/internal/logger"
	"github.com/MKhiriev/meme-forge/models"
)

func newTestGenerationRepo(t *testing.T) (*generationRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &generationRepository{DB: db, logger: logger.Nop()}, mock
}

func TestGenerationRepository_CountSince(t *testing.T) {
	repo, mock := newTestGenerationRepo(t)

	since := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM generations WHERE user_id = \$1 AND created_at >= \$2`).
		WithArgs(int64(7), since).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.CountSince(context.Background(), models.IdentityKey{Kind: models.IdentityKindUser, Value: "7"}, since)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerationRepository_CountSince_InvalidKey(t *testing.T) {
	repo, _ := newTestGenerationRepo(t)

	_, err := repo.CountSince(context.Background(), models.IdentityKey{Kind: models.IdentityKindUser, Value: "abc"}, time.Now())
	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
}

func TestGenerationRepository_CountSince_DBError(t *testing.T) {
	repo, mock := newTestGenerationRepo(t)

	mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("boom"))

	_, err := repo.CountSince(context.Background(), models.IdentityKey{Kind: models.IdentityKindIP, Value: "1.1.1.1"}, time.Now())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestGenerationRepository_InsertEvent(t *testing.T) {
	repo, mock := newTestGenerationRepo(t)

	ip := "1.1.1.1"
	mock.ExpectQuery("INSERT INTO generations").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	event, err := repo.InsertEvent(context.Background(), models.GenerationEvent{IPAddress: &ip, CreatedAt: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, int64(11), event.ID)
	assert.Equal(t, &ip, event.IPAddress)
}

func TestGenerationRepository_RecordGeneration_Commits(t *testing.T) {
	repo, mock := newTestGenerationRepo(t)

	userID := int64(5)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO generations").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))
	mock.ExpectQuery("INSERT INTO memes").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(31))
	mock.ExpectCommit()

	event, meme, err := repo.RecordGeneration(context.Background(),
		models.GenerationEvent{UserID: &userID, CreatedAt: now},
		models.Meme{UserID: &userID, Prompt: "p", EnhancedPrompt: "ep", ImageURL: "u", CreatedAt: now},
	)
	require.NoError(t, err)
	assert.Equal(t, int64(21), event.ID)
	assert.Equal(t, int64(31), meme.ID)
	assert.Equal(t, "ep", meme.EnhancedPrompt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerationRepository_RecordGeneration_RollsBackWhenMemeInsertFails(t *testing.T) {
	repo, mock := newTestGenerationRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO generations").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))
	mock.ExpectQuery("INSERT INTO memes").
		WillReturnError(pgError(pgerrcode.NotNullViolation))
	mock.ExpectRollback()

	_, _, err := repo.RecordGeneration(context.Background(), models.GenerationEvent{}, models.Meme{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerationRepository_RecordGeneration_BeginFails(t *testing.T) {
	repo, mock := newTestGenerationRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	_, _, err := repo.RecordGeneration(context.Background(), models.GenerationEvent{}, models.Meme{})
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestGenerationRepository_RecordGeneration_RetriesSerializationFailure(t *testing.T) {
	repo, mock := newTestGenerationRepo(t)

	prev := recordBackoff
	recordBackoff = time.Millisecond
	t.Cleanup(func() { recordBackoff = prev })

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO generations").
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectRollback()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO generations").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectQuery("INSERT INTO memes").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectCommit()

	event, meme, err := repo.RecordGeneration(context.Background(), models.GenerationEvent{}, models.Meme{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), event.ID)
	assert.Equal(t, int64(3), meme.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerationRepository_RecordGeneration_GivesUpAfterAttempts(t *testing.T) {
	repo, mock := newTestGenerationRepo(t)

	prev := recordBackoff
	recordBackoff = time.Millisecond
	t.Cleanup(func() { recordBackoff = prev })

	for i := 0; i < recordAttempts; i++ {
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO generations").
			WillReturnError(pgError(pgerrcode.DeadlockDetected))
		mock.ExpectRollback()
	}

	_, _, err := repo.RecordGeneration(context.Background(), models.GenerationEvent{}, models.Meme{})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
