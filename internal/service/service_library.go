package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/meme-forge/internal/logger"
	"github.com/MKhiriev/meme-forge/internal/store"
	"github.com/MKhiriev/meme-forge/internal/utils"
	"github.com/MKhiriev/meme-forge/internal/validators"
	"github.com/MKhiriev/meme-forge/models"
)

type libraryService struct {
	characters store.CharacterRepository
	assets     store.AssetRepository
	validator  validators.Validator
	clock      utils.Clock
	logger     *logger.Logger
}

func NewLibraryService(characters store.CharacterRepository, assets store.AssetRepository, validator validators.Validator, clock utils.Clock, logger *logger.Logger) LibraryService {
	return &libraryService{
		characters: characters,
		assets:     assets,
		validator:  validator,
		clock:      clock,
		logger:     logger,
	}
}

func (l *libraryService) CreateCharacter(ctx context.Context, userID int64, req models.CreateCharacterRequest) (models.Character, error) {
	if err := l.validator.Validate(ctx, req); err != nil {
		return models.Character{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	character, err := l.characters.CreateCharacter(ctx, models.Character{
		UserID:            userID,
		Name:              strings.TrimSpace(req.Name),
		Description:       strings.TrimSpace(req.Description),
		StylePrompt:       strings.TrimSpace(req.StylePrompt),
		ReferenceImageURL: req.ReferenceImageURL,
		IsActive:          true,
		CreatedAt:         l.clock.Now(),
	})
	if err != nil {
		return models.Character{}, err
	}

	logger.FromContext(ctx).Info().Int64("character_id", character.ID).Msg("character created")
	return character, nil
}

func (l *libraryService) ListCharacters(ctx context.Context, userID int64) ([]models.Character, error) {
	characters, err := l.characters.ListCharactersByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if characters == nil {
		characters = []models.Character{}
	}
	return characters, nil
}

func (l *libraryService) CreateAsset(ctx context.Context, userID int64, req models.CreateAssetRequest) (models.Asset, error) {
	if err := l.validator.Validate(ctx, req); err != nil {
		return models.Asset{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	assetType := strings.TrimSpace(req.AssetType)
	if assetType == "" {
		assetType = "logo"
	}

	asset, err := l.assets.CreateAsset(ctx, models.Asset{
		UserID:      userID,
		Name:        strings.TrimSpace(req.Name),
		ImageURL:    req.ImageURL,
		AssetType:   assetType,
		Description: strings.TrimSpace(req.Description),
		IsActive:    true,
		CreatedAt:   l.clock.Now(),
	})
	if err != nil {
		return models.Asset{}, err
	}

	logger.FromContext(ctx).Info().Int64("asset_id", asset.ID).Str("asset_type", asset.AssetType).Msg("asset created")
	return asset, nil
}

func (l *libraryService) ListAssets(ctx context.Context, userID int64) ([]models.Asset, error) {
	assets, err := l.assets.ListAssetsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if assets == nil {
		assets = []models.Asset{}
	}
	return assets, nil
}
