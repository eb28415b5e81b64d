package store

import (
	"context"
	"time"

	"github.com/MKhiriev/meme-forge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// UserRepository persists registered accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// GenerationRepository is the append-only log of successful generations
// that quota counting is based on.
type GenerationRepository interface {
	// CountSince counts events of key created at or after since.
	CountSince(ctx context.Context, key models.IdentityKey, since time.Time) (int, error)

	// InsertEvent appends a single event.
	InsertEvent(ctx context.Context, event models.GenerationEvent) (models.GenerationEvent, error)

	// RecordGeneration inserts the event and the meme in one transaction.
	// Either both rows are written or neither is.
	RecordGeneration(ctx context.Context, event models.GenerationEvent, meme models.Meme) (models.GenerationEvent, models.Meme, error)
}

// MemeRepository reads and maintains generated memes.
type MemeRepository interface {
	ListByUser(ctx context.Context, userID int64, page models.Page) ([]models.Meme, error)
	ListPublic(ctx context.Context, page models.Page) ([]models.Meme, error)
	FindPublicByID(ctx context.Context, memeID int64) (models.Meme, error)
	StatsByUser(ctx context.Context, userID int64) (models.DashboardStats, error)
	UpdateVisibility(ctx context.Context, memeID, userID int64, isPublic bool) error
	Delete(ctx context.Context, memeID, userID int64) error
	IncrementLikes(ctx context.Context, memeID int64) (int, error)
	IncrementViews(ctx context.Context, memeID int64) error

	// ListUnstored returns memes created at or after since whose image still
	// points at the backend's temporary URL, oldest first.
	ListUnstored(ctx context.Context, since time.Time, limit uint64) ([]models.Meme, error)
	MarkStored(ctx context.Context, memeID int64, imageURL string) error
}

// CharacterRepository persists reusable characters.
type CharacterRepository interface {
	CreateCharacter(ctx context.Context, character models.Character) (models.Character, error)
	FindCharacterByID(ctx context.Context, characterID int64) (models.Character, error)
	ListCharactersByUser(ctx context.Context, userID int64) ([]models.Character, error)
}

// AssetRepository persists uploaded asset descriptors.
type AssetRepository interface {
	CreateAsset(ctx context.Context, asset models.Asset) (models.Asset, error)
	FindAssetsByIDs(ctx context.Context, userID int64, assetIDs []int64) ([]models.Asset, error)
	ListAssetsByUser(ctx context.Context, userID int64) ([]models.Asset, error)
}
