package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/MKhiriev/meme-forge/internal/logger"
	"github.com/MKhiriev/meme-forge/models"
)

// memeRepository reads and maintains the "memes" table. List queries are
// scanned with sqlx into [models.Meme] through its db tags.
type memeRepository struct {
	*DB
	logger *logger.Logger
}

func NewMemeRepository(db *DB, logger *logger.Logger) MemeRepository {
	logger.Debug().Msg("creating meme repository")
	return &memeRepository{
		DB:     db,
		logger: logger,
	}
}

// ListByUser returns the user's memes, newest first.
func (m *memeRepository) ListByUser(ctx context.Context, userID int64, page models.Page) ([]models.Meme, error) {
	query, args, err := buildListMemesByUserQuery(m.Builder(), userID, page)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return m.selectMemes(ctx, "memeRepository.ListByUser", query, args)
}

// ListPublic returns public memes with their author's username, newest first.
func (m *memeRepository) ListPublic(ctx context.Context, page models.Page) ([]models.Meme, error) {
	query, args, err := buildListPublicMemesQuery(m.Builder(), page)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return m.selectMemes(ctx, "memeRepository.ListPublic", query, args)
}

// FindPublicByID returns a public meme or [ErrMemeNotFound].
func (m *memeRepository) FindPublicByID(ctx context.Context, memeID int64) (models.Meme, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindPublicMemeQuery(m.Builder(), memeID)
	if err != nil {
		return models.Meme{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var meme models.Meme
	err = sqlx.GetContext(ctx, m.x, &meme, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Meme{}, ErrMemeNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "memeRepository.FindPublicByID").Int64("meme_id", memeID).Msg("failed to get meme")
		return models.Meme{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return meme, nil
}

// StatsByUser aggregates meme counters of the user. GenerationsToday and
// DailyLimit are left to the caller.
func (m *memeRepository) StatsByUser(ctx context.Context, userID int64) (models.DashboardStats, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildMemeStatsQuery(m.Builder(), userID)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var stats models.DashboardStats
	if err = m.QueryRowContext(ctx, query, args...).Scan(&stats.TotalMemes, &stats.TotalLikes, &stats.TotalViews); err != nil {
		log.Err(err).Str("func", "memeRepository.StatsByUser").Int64("user_id", userID).Msg("failed to aggregate stats")
		return models.DashboardStats{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return stats, nil
}

// UpdateVisibility sets the public flag of a meme owned by userID.
func (m *memeRepository) UpdateVisibility(ctx context.Context, memeID, userID int64, isPublic bool) error {
	query, args, err := buildUpdateVisibilityQuery(m.Builder(), memeID, userID, isPublic)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return m.execOne(ctx, "memeRepository.UpdateVisibility", query, args)
}

// Delete removes a meme owned by userID. Generation events are kept: they
// belong to the quota log, not to the meme.
func (m *memeRepository) Delete(ctx context.Context, memeID, userID int64) error {
	query, args, err := buildDeleteMemeQuery(m.Builder(), memeID, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return m.execOne(ctx, "memeRepository.Delete", query, args)
}

// IncrementLikes adds a like to a public meme and returns the new total.
func (m *memeRepository) IncrementLikes(ctx context.Context, memeID int64) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildIncrementLikesQuery(m.Builder(), memeID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var likes int
	err = m.QueryRowContext(ctx, query, args...).Scan(&likes)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrMemeNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "memeRepository.IncrementLikes").Int64("meme_id", memeID).Msg("failed to increment likes")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return likes, nil
}

func (m *memeRepository) IncrementViews(ctx context.Context, memeID int64) error {
	query, args, err := buildIncrementViewsQuery(m.Builder(), memeID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return m.execOne(ctx, "memeRepository.IncrementViews", query, args)
}

// ListUnstored returns memes still pointing at the backend URL, oldest first.
func (m *memeRepository) ListUnstored(ctx context.Context, since time.Time, limit uint64) ([]models.Meme, error) {
	query, args, err := buildListUnstoredQuery(m.Builder(), since, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return m.selectMemes(ctx, "memeRepository.ListUnstored", query, args)
}

// MarkStored replaces the image URL of an unstored meme with its durable
// copy. A meme stored concurrently yields [ErrMemeNotFound].
func (m *memeRepository) MarkStored(ctx context.Context, memeID int64, imageURL string) error {
	query, args, err := buildMarkStoredQuery(m.Builder(), memeID, imageURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return m.execOne(ctx, "memeRepository.MarkStored", query, args)
}

func (m *memeRepository) selectMemes(ctx context.Context, funcName, query string, args []any) ([]models.Meme, error) {
	log := logger.FromContext(ctx)

	memes := make([]models.Meme, 0, 50)
	if err := sqlx.SelectContext(ctx, m.x, &memes, query, args...); err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to select memes")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return memes, nil
}

// execOne runs a statement that must affect exactly one meme.
func (m *memeRepository) execOne(ctx context.Context, funcName, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := m.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrMemeNotFound
	}

	return nil
}
