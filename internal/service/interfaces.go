package service

import (
	"context"
	"time"

	"github.com/MKhiriev/meme-forge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers users, checks credentials and issues and validates
// stateless JWT tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// GetUserByToken parses tokenString and loads the active user it was
	// issued for.
	GetUserByToken(ctx context.Context, tokenString string) (models.User, error)
}

// IdentityResolver turns raw request identity material into the identity
// quota is counted against. It has no side effects.
type IdentityResolver interface {
	Resolve(ctx context.Context, req models.IdentityRequest) (models.Identity, error)
}

// QuotaLedger counts generation events per identity within the current
// calendar day of the server clock.
type QuotaLedger interface {
	CountToday(ctx context.Context, key models.IdentityKey) (int, error)
	RecordEvent(ctx context.Context, key models.IdentityKey) error

	// Check returns the number of generations used today, or a
	// *QuotaExceededError when no generation is left.
	Check(ctx context.Context, identity models.Identity) (int, error)
	Remaining(ctx context.Context, identity models.Identity) (models.QuotaStatus, error)
}

// GenerationService runs the generation pipeline for one request.
type GenerationService interface {
	Generate(ctx context.Context, req models.GenerateRequest) (models.GenerateResult, error)
}

// ImagePersister copies backend images into durable blob storage.
type ImagePersister interface {
	// Enabled reports whether a blob store is configured.
	Enabled() bool

	// Persist downloads sourceURL and stores it. The returned URL is the
	// durable one.
	Persist(ctx context.Context, userID *int64, sourceURL string) (string, error)

	// RetryUnstored re-attempts persistence for memes created after since
	// that still point at the backend URL. It returns how many were stored.
	RetryUnstored(ctx context.Context, since time.Time, limit int) (int, error)
}

// MemeService serves the dashboard and community features.
type MemeService interface {
	Dashboard(ctx context.Context, userID int64, page models.Page) (models.Dashboard, error)
	Community(ctx context.Context, page models.Page) ([]models.Meme, error)
	ViewMeme(ctx context.Context, memeID int64) (models.Meme, error)
	SetVisibility(ctx context.Context, userID, memeID int64, isPublic bool) error
	DeleteMeme(ctx context.Context, userID, memeID int64) error
	LikeMeme(ctx context.Context, memeID int64) (int, error)
}

// LibraryService manages the characters and assets of registered users.
type LibraryService interface {
	CreateCharacter(ctx context.Context, userID int64, req models.CreateCharacterRequest) (models.Character, error)
	ListCharacters(ctx context.Context, userID int64) ([]models.Character, error)
	CreateAsset(ctx context.Context, userID int64, req models.CreateAssetRequest) (models.Asset, error)
	ListAssets(ctx context.Context, userID int64) ([]models.Asset, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetVersionInfo(ctx context.Context) models.VersionInfo
}
