package http

import (
	"context"

	"github.com/MKhiriev/meme-forge/internal/config"
	"github.com/MKhiriev/meme-forge/internal/logger"
	"github.com/MKhiriev/meme-forge/internal/service"
	"github.com/MKhiriev/meme-forge/models"
)

type fakeAuthService struct {
	registerUserFn   func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn          func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn    func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn     func(ctx context.Context, tokenString string) (models.Token, error)
	getUserByTokenFn func(ctx context.Context, tokenString string) (models.User, error)
}

func (f *fakeAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return f.registerUserFn(ctx, req)
}

func (f *fakeAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return f.loginFn(ctx, req)
}

func (f *fakeAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if f.createTokenFn == nil {
		return models.Token{SignedString: "signed-token", UserID: user.UserID}, nil
	}
	return f.createTokenFn(ctx, user)
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if f.parseTokenFn == nil {
		if tokenString != "valid" {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		}
		return models.Token{UserID: 42}, nil
	}
	return f.parseTokenFn(ctx, tokenString)
}

func (f *fakeAuthService) GetUserByToken(ctx context.Context, tokenString string) (models.User, error) {
	return f.getUserByTokenFn(ctx, tokenString)
}

type fakeIdentityResolver struct {
	resolveFn func(ctx context.Context, req models.IdentityRequest) (models.Identity, error)
}

func (f *fakeIdentityResolver) Resolve(ctx context.Context, req models.IdentityRequest) (models.Identity, error) {
	return f.resolveFn(ctx, req)
}

type fakeQuotaLedger struct {
	remainingFn func(ctx context.Context, identity models.Identity) (models.QuotaStatus, error)
}

func (f *fakeQuotaLedger) CountToday(context.Context, models.IdentityKey) (int, error) { return 0, nil }
func (f *fakeQuotaLedger) RecordEvent(context.Context, models.IdentityKey) error      { return nil }
func (f *fakeQuotaLedger) Check(context.Context, models.Identity) (int, error)        { return 0, nil }

func (f *fakeQuotaLedger) Remaining(ctx context.Context, identity models.Identity) (models.QuotaStatus, error) {
	return f.remainingFn(ctx, identity)
}

type fakeGenerationService struct {
	generateFn func(ctx context.Context, req models.GenerateRequest) (models.GenerateResult, error)
}

func (f *fakeGenerationService) Generate(ctx context.Context, req models.GenerateRequest) (models.GenerateResult, error) {
	return f.generateFn(ctx, req)
}

type fakeMemeService struct {
	dashboardFn     func(ctx context.Context, userID int64, page models.Page) (models.Dashboard, error)
	communityFn     func(ctx context.Context, page models.Page) ([]models.Meme, error)
	viewMemeFn      func(ctx context.Context, memeID int64) (models.Meme, error)
	setVisibilityFn func(ctx context.Context, userID, memeID int64, isPublic bool) error
	deleteMemeFn    func(ctx context.Context, userID, memeID int64) error
	likeMemeFn      func(ctx context.Context, memeID int64) (int, error)
}

func (f *fakeMemeService) Dashboard(ctx context.Context, userID int64, page models.Page) (models.Dashboard, error) {
	return f.dashboardFn(ctx, userID, page)
}

func (f *fakeMemeService) Community(ctx context.Context, page models.Page) ([]models.Meme, error) {
	return f.communityFn(ctx, page)
}

func (f *fakeMemeService) ViewMeme(ctx context.Context, memeID int64) (models.Meme, error) {
	return f.viewMemeFn(ctx, memeID)
}

func (f *fakeMemeService) SetVisibility(ctx context.Context, userID, memeID int64, isPublic bool) error {
	return f.setVisibilityFn(ctx, userID, memeID, isPublic)
}

func (f *fakeMemeService) DeleteMeme(ctx context.Context, userID, memeID int64) error {
	return f.deleteMemeFn(ctx, userID, memeID)
}

func (f *fakeMemeService) LikeMeme(ctx context.Context, memeID int64) (int, error) {
	return f.likeMemeFn(ctx, memeID)
}

type fakeLibraryService struct {
	createCharacterFn func(ctx context.Context, userID int64, req models.CreateCharacterRequest) (models.Character, error)
	listCharactersFn  func(ctx context.Context, userID int64) ([]models.Character, error)
	createAssetFn     func(ctx context.Context, userID int64, req models.CreateAssetRequest) (models.Asset, error)
	listAssetsFn      func(ctx context.Context, userID int64) ([]models.Asset, error)
}

func (f *fakeLibraryService) CreateCharacter(ctx context.Context, userID int64, req models.CreateCharacterRequest) (models.Character, error) {
	return f.createCharacterFn(ctx, userID, req)
}

func (f *fakeLibraryService) ListCharacters(ctx context.Context, userID int64) ([]models.Character, error) {
	return f.listCharactersFn(ctx, userID)
}

func (f *fakeLibraryService) CreateAsset(ctx context.Context, userID int64, req models.CreateAssetRequest) (models.Asset, error) {
	return f.createAssetFn(ctx, userID, req)
}

func (f *fakeLibraryService) ListAssets(ctx context.Context, userID int64) ([]models.Asset, error) {
	return f.listAssetsFn(ctx, userID)
}

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(context.Context) string { return f.version }

func (f *fakeAppInfoService) GetVersionInfo(context.Context) models.VersionInfo {
	return models.VersionInfo{Version: f.version}
}

// newTestRouter wires the full router over services. Services not set by
// the test are left nil.
func newTestRouter(services *service.Services) *Handler {
	if services.AuthService == nil {
		services.AuthService = &fakeAuthService{}
	}
	return NewHandler(services, config.Server{}, logger.Nop())
}
