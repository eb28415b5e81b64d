package service

import (
	"github.com/MKhiriev/meme-forge/internal/adapter"
	"github.com/MKhiriev/meme-forge/internal/config"
	"github.com/MKhiriev/meme-forge/internal/logger"
	"github.com/MKhiriev/meme-forge/internal/store"
	"github.com/MKhiriev/meme-forge/internal/utils"
	"github.com/MKhiriev/meme-forge/internal/validators"
	"github.com/MKhiriev/meme-forge/models"
)

// Adapters groups the outbound integrations the services depend on.
type Adapters struct {
	ImageBackend adapter.ImageBackend
	Downloader   adapter.ImageDownloader
	BlobStore    adapter.BlobStore
}

type Services struct {
	AuthService       AuthService
	IdentityResolver  IdentityResolver
	QuotaLedger       QuotaLedger
	GenerationService GenerationService
	ImagePersister    ImagePersister
	MemeService       MemeService
	LibraryService    LibraryService
	AppInfoService    AppInfoService
}

func NewServices(
	storages *store.Storages,
	adapters Adapters,
	cfg *config.StructuredConfig,
	buildInfo models.AppBuildInfo,
	clock utils.Clock,
	logger *logger.Logger,
) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewRequestValidator()

	authService := NewAuthService(storages.UserRepository, validator, cfg.App, cfg.Quota, clock, logger)
	resolver := NewIdentityResolver(authService, cfg.Quota.GuestDailyLimit, logger)
	quota := NewQuotaLedger(storages.GenerationRepository, clock, logger)
	persister := NewImagePersister(adapters.Downloader, adapters.BlobStore, storages.MemeRepository, clock, logger)

	return &Services{
		AuthService:      authService,
		IdentityResolver: resolver,
		QuotaLedger:      quota,
		GenerationService: NewGenerationService(
			storages, resolver, quota, adapters.ImageBackend, persister,
			validator, cfg.Adapter, clock, logger,
		),
		ImagePersister: persister,
		MemeService:    NewMemeService(storages.MemeRepository, storages.UserRepository, quota, logger),
		LibraryService: NewLibraryService(storages.CharacterRepository, storages.AssetRepository, validator, clock, logger),
		AppInfoService: appInfoService,
	}, nil
}
