package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/MKhiriev/meme-forge/internal/logger"
	"github.com/MKhiriev/meme-forge/models"
)

// libraryRepository stores user characters and assets. It implements both
// [CharacterRepository] and [AssetRepository].
type libraryRepository struct {
	*DB
	logger *logger.Logger
}

func NewCharacterRepository(db *DB, logger *logger.Logger) CharacterRepository {
	logger.Debug().Msg("creating character repository")
	return &libraryRepository{DB: db, logger: logger}
}

func NewAssetRepository(db *DB, logger *logger.Logger) AssetRepository {
	logger.Debug().Msg("creating asset repository")
	return &libraryRepository{DB: db, logger: logger}
}

func (l *libraryRepository) CreateCharacter(ctx context.Context, character models.Character) (models.Character, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateCharacterQuery(l.Builder(), character)
	if err != nil {
		return models.Character{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = l.QueryRowContext(ctx, query, args...).Scan(&character.ID); err != nil {
		log.Err(err).Str("func", "libraryRepository.CreateCharacter").Int64("user_id", character.UserID).Msg("failed to insert character")
		return models.Character{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	character.IsActive = true
	character.CreatedAt = character.CreatedAt.UTC()
	return character, nil
}

// FindCharacterByID returns an active character or [ErrCharacterNotFound].
// Ownership is checked by the caller.
func (l *libraryRepository) FindCharacterByID(ctx context.Context, characterID int64) (models.Character, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindCharacterQuery(l.Builder(), characterID)
	if err != nil {
		return models.Character{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var character models.Character
	err = sqlx.GetContext(ctx, l.x, &character, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Character{}, ErrCharacterNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "libraryRepository.FindCharacterByID").Int64("character_id", characterID).Msg("failed to get character")
		return models.Character{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return character, nil
}

func (l *libraryRepository) ListCharactersByUser(ctx context.Context, userID int64) ([]models.Character, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCharactersQuery(l.Builder(), userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	characters := make([]models.Character, 0)
	if err = sqlx.SelectContext(ctx, l.x, &characters, query, args...); err != nil {
		log.Err(err).Str("func", "libraryRepository.ListCharactersByUser").Int64("user_id", userID).Msg("failed to list characters")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return characters, nil
}

func (l *libraryRepository) CreateAsset(ctx context.Context, asset models.Asset) (models.Asset, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateAssetQuery(l.Builder(), asset)
	if err != nil {
		return models.Asset{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = l.QueryRowContext(ctx, query, args...).Scan(&asset.ID); err != nil {
		log.Err(err).Str("func", "libraryRepository.CreateAsset").Int64("user_id", asset.UserID).Msg("failed to insert asset")
		return models.Asset{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	asset.IsActive = true
	asset.CreatedAt = asset.CreatedAt.UTC()
	return asset, nil
}

// FindAssetsByIDs returns the active assets of userID among assetIDs.
// Unknown or foreign ids are silently skipped.
func (l *libraryRepository) FindAssetsByIDs(ctx context.Context, userID int64, assetIDs []int64) ([]models.Asset, error) {
	if len(assetIDs) == 0 {
		return []models.Asset{}, nil
	}

	log := logger.FromContext(ctx)

	query, args, err := buildFindAssetsQuery(l.Builder(), userID, assetIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	assets := make([]models.Asset, 0, len(assetIDs))
	if err = sqlx.SelectContext(ctx, l.x, &assets, query, args...); err != nil {
		log.Err(err).Str("func", "libraryRepository.FindAssetsByIDs").Int64("user_id", userID).Msg("failed to get assets")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return assets, nil
}

func (l *libraryRepository) ListAssetsByUser(ctx context.Context, userID int64) ([]models.Asset, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAssetsQuery(l.Builder(), userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	assets := make([]models.Asset, 0)
	if err = sqlx.SelectContext(ctx, l.x, &assets, query, args...); err != nil {
		log.Err(err).Str("func", "libraryRepository.ListAssetsByUser").Int64("user_id", userID).Msg("failed to list assets")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return assets, nil
}
