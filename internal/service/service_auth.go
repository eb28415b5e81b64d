package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/meme-forge/internal/config"
	"github.com/MKhiriev/meme-forge/internal/logger"
	"github.com/MKhiriev/meme-forge/internal/store"
	"github.com/MKhiriev/meme-forge/internal/utils"
	"github.com/MKhiriev/meme-forge/internal/validators"
	"github.com/MKhiriev/meme-forge/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator

	// passwordHashCost is the bcrypt cost used at registration.
	passwordHashCost int

	// dummyPasswordHash is checked for unknown emails so that they cost
	// as much as a wrong password.
	dummyPasswordHash string
	verifyPassword    func(plaintext, hash string) bool

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// userDailyLimit is assigned to every new account.
	userDailyLimit int

	clock  utils.Clock
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from appCfg and the registered
// quota from quotaCfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, appCfg config.App, quotaCfg config.Quota, clock utils.Clock, logger *logger.Logger) AuthService {
	dummyHash, err := utils.HashPassword(uuid.NewString(), appCfg.PasswordHashCost)
	if err != nil {
		logger.Err(err).Msg("failed to hash dummy password")
	}

	return &authService{
		userRepository:    userRepository,
		validator:         validator,
		passwordHashCost:  appCfg.PasswordHashCost,
		dummyPasswordHash: dummyHash,
		verifyPassword:    utils.VerifyPassword,
		tokenSignKey:      appCfg.TokenSignKey,
		tokenIssuer:       appCfg.TokenIssuer,
		tokenDuration:     appCfg.TokenDuration,
		userDailyLimit:    quotaCfg.UserDailyLimit,
		clock:             clock,
		logger:            logger,
	}
}

// RegisterUser creates a new user account.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidInput wrapping the validation error for a malformed email,
//     username or a short password.
//   - store.ErrEmailAlreadyExists (wrapped) if the email is taken.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("email", req.Email).Msg("invalid registration data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	hash, err := utils.HashPassword(req.Password, a.passwordHashCost)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hash,
		DailyLimit:   a.userDailyLimit,
		IsActive:     true,
		CreatedAt:    a.clock.Now(),
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", registeredUser.UserID).Msg("user registered")
	return registeredUser, nil
}

// Login authenticates an existing user.
//
// Unknown email, wrong password and a deactivated account all return
// ErrInvalidCredentials so that the response does not reveal which one
// failed.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		a.verifyPassword(req.Password, a.dummyPasswordHash)
		log.Debug().Msg("login attempt for unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.verifyPassword(req.Password, foundUser.PasswordHash) {
		log.Debug().Int64("user_id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	if !foundUser.IsActive {
		log.Info().Int64("user_id", foundUser.UserID).Msg("login attempt for deactivated account")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, wrong signature, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// GetUserByToken parses tokenString and loads its user. A token whose user
// was deleted or deactivated is treated as invalid.
func (a *authService) GetUserByToken(ctx context.Context, tokenString string) (models.User, error) {
	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}
	if !user.IsActive {
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	return user, nil
}
