package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/meme-forge/internal/logger"
	"github.com/MKhiriev/meme-forge/internal/store"
	"github.com/MKhiriev/meme-forge/models"
)

const (
	DefaultPageLimit uint64 = 20
	MaxPageLimit     uint64 = 100
)

type memeService struct {
	memes  store.MemeRepository
	users  store.UserRepository
	quota  QuotaLedger
	logger *logger.Logger
}

func NewMemeService(memes store.MemeRepository, users store.UserRepository, quota QuotaLedger, logger *logger.Logger) MemeService {
	return &memeService{
		memes:  memes,
		users:  users,
		quota:  quota,
		logger: logger,
	}
}

// Dashboard returns the user's memes together with lifetime totals and
// today's quota usage.
func (m *memeService) Dashboard(ctx context.Context, userID int64, page models.Page) (models.Dashboard, error) {
	log := logger.FromContext(ctx)

	user, err := m.users.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("failed to load dashboard user")
		return models.Dashboard{}, fmt.Errorf("error loading user: %w", err)
	}

	memes, err := m.memes.ListByUser(ctx, userID, NormalizePage(page))
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("error listing memes: %w", err)
	}

	stats, err := m.memes.StatsByUser(ctx, userID)
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("error loading stats: %w", err)
	}

	used, err := m.quota.CountToday(ctx, models.IdentityKey{
		Kind:  models.IdentityKindUser,
		Value: strconv.FormatInt(userID, 10),
	})
	if err != nil {
		return models.Dashboard{}, err
	}

	stats.GenerationsToday = used
	stats.DailyLimit = user.DailyLimit

	if memes == nil {
		memes = []models.Meme{}
	}
	return models.Dashboard{Memes: memes, Stats: stats}, nil
}

func (m *memeService) Community(ctx context.Context, page models.Page) ([]models.Meme, error) {
	memes, err := m.memes.ListPublic(ctx, NormalizePage(page))
	if err != nil {
		return nil, fmt.Errorf("error listing public memes: %w", err)
	}
	if memes == nil {
		memes = []models.Meme{}
	}
	return memes, nil
}

// ViewMeme counts a view of a public meme and returns it.
// Private and missing memes yield store.ErrMemeNotFound.
func (m *memeService) ViewMeme(ctx context.Context, memeID int64) (models.Meme, error) {
	meme, err := m.memes.FindPublicByID(ctx, memeID)
	if err != nil {
		return models.Meme{}, err
	}

	if err = m.memes.IncrementViews(ctx, memeID); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("meme_id", memeID).Msg("failed to count view")
		return meme, nil
	}
	meme.Views++

	return meme, nil
}

func (m *memeService) SetVisibility(ctx context.Context, userID, memeID int64, isPublic bool) error {
	if err := m.memes.UpdateVisibility(ctx, memeID, userID, isPublic); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().
		Int64("meme_id", memeID).
		Bool("is_public", isPublic).
		Msg("meme visibility changed")
	return nil
}

// DeleteMeme removes the meme. The generation event it came from stays and
// still counts against today's quota.
func (m *memeService) DeleteMeme(ctx context.Context, userID, memeID int64) error {
	if err := m.memes.Delete(ctx, memeID, userID); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Int64("meme_id", memeID).Msg("meme deleted")
	return nil
}

func (m *memeService) LikeMeme(ctx context.Context, memeID int64) (int, error) {
	return m.memes.IncrementLikes(ctx, memeID)
}

// NormalizePage applies the default limit to an empty page and caps it at
// MaxPageLimit.
func NormalizePage(page models.Page) models.Page {
	switch {
	case page.Limit == 0:
		page.Limit = DefaultPageLimit
	case page.Limit > MaxPageLimit:
		page.Limit = MaxPageLimit
	}
	return page
}
