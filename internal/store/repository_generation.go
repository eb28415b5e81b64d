package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/meme-forge/internal/logger"
	"github.com/MKhiriev/meme-forge/models"
)

// recordAttempts bounds retries of the generation transaction on
// retryable driver errors (serialization failures, busy SQLite file).
const recordAttempts = 3

var recordBackoff = 50 * time.Millisecond

type generationRepository struct {
	*DB
	logger *logger.Logger
}

func NewGenerationRepository(db *DB, logger *logger.Logger) GenerationRepository {
	logger.Debug().Msg("creating generation repository")
	return &generationRepository{
		DB:     db,
		logger: logger,
	}
}

// CountSince counts the generation events of key created at or after since.
func (g *generationRepository) CountSince(ctx context.Context, key models.IdentityKey, since time.Time) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountGenerationsQuery(g.Builder(), key, since)
	if err != nil {
		log.Err(err).Str("func", "generationRepository.CountSince").Str("identity", key.String()).Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = g.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "generationRepository.CountSince").Str("identity", key.String()).Msg("failed to count generations")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// InsertEvent appends a single generation event.
func (g *generationRepository) InsertEvent(ctx context.Context, event models.GenerationEvent) (models.GenerationEvent, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertGenerationQuery(g.Builder(), event)
	if err != nil {
		return models.GenerationEvent{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = g.QueryRowContext(ctx, query, args...).Scan(&event.ID); err != nil {
		log.Err(err).Str("func", "generationRepository.InsertEvent").Msg("failed to insert generation event")
		return models.GenerationEvent{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return event, nil
}

// RecordGeneration writes the event and the meme in a single transaction.
// Retryable driver errors restart the whole transaction a bounded number
// of times.
func (g *generationRepository) RecordGeneration(ctx context.Context, event models.GenerationEvent, meme models.Meme) (models.GenerationEvent, models.Meme, error) {
	log := logger.FromContext(ctx)

	var err error
	for attempt := 1; attempt <= recordAttempts; attempt++ {
		var savedEvent models.GenerationEvent
		var savedMeme models.Meme

		savedEvent, savedMeme, err = g.recordGeneration(ctx, event, meme)
		if err == nil {
			return savedEvent, savedMeme, nil
		}

		if g.errorClassificator == nil || g.errorClassificator.Classify(err) != Retryable || attempt == recordAttempts {
			break
		}

		log.Warn().Err(err).
			Str("func", "generationRepository.RecordGeneration").
			Int("attempt", attempt).
			Msg("retryable error, restarting transaction")

		select {
		case <-ctx.Done():
			return models.GenerationEvent{}, models.Meme{}, ctx.Err()
		case <-time.After(recordBackoff * time.Duration(attempt)):
		}
	}

	return models.GenerationEvent{}, models.Meme{}, err
}

func (g *generationRepository) recordGeneration(ctx context.Context, event models.GenerationEvent, meme models.Meme) (models.GenerationEvent, models.Meme, error) {
	log := logger.FromContext(ctx)

	eventQuery, eventArgs, err := buildInsertGenerationQuery(g.Builder(), event)
	if err != nil {
		return models.GenerationEvent{}, models.Meme{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	memeQuery, memeArgs, err := buildInsertMemeQuery(g.Builder(), meme)
	if err != nil {
		return models.GenerationEvent{}, models.Meme{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := g.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "generationRepository.RecordGeneration").Msg("failed to begin transaction")
		return models.GenerationEvent{}, models.Meme{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = tx.QueryRowContext(ctx, eventQuery, eventArgs...).Scan(&event.ID); err != nil {
		log.Err(err).Str("func", "generationRepository.RecordGeneration").Msg("failed to insert generation event")
		return models.GenerationEvent{}, models.Meme{}, insertError(err)
	}

	if err = tx.QueryRowContext(ctx, memeQuery, memeArgs...).Scan(&meme.ID); err != nil {
		log.Err(err).Str("func", "generationRepository.RecordGeneration").Msg("failed to insert meme")
		return models.GenerationEvent{}, models.Meme{}, insertError(err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "generationRepository.RecordGeneration").Msg("failed to commit transaction")
		return models.GenerationEvent{}, models.Meme{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().
		Str("func", "generationRepository.RecordGeneration").
		Int64("event_id", event.ID).
		Int64("meme_id", meme.ID).
		Msg("generation recorded")

	return event, meme, nil
}

func insertError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrGenerationNotSaved
	}
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}
