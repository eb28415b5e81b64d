package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/MKhiriev/meme-forge/internal/logger"
	"github.com/MKhiriev/meme-forge/models"
)

type identityResolver struct {
	authService AuthService
	guestLimit  int
	logger      *logger.Logger
}

// NewIdentityResolver returns an [IdentityResolver] that grants anonymous
// callers guestLimit generations per day.
func NewIdentityResolver(authService AuthService, guestLimit int, logger *logger.Logger) IdentityResolver {
	return &identityResolver{
		authService: authService,
		guestLimit:  guestLimit,
		logger:      logger,
	}
}

// Resolve picks the identity class of the caller.
//
// A valid token of an existing active user yields a registered identity
// keyed by user id. Any token or lookup failure demotes the caller to
// anonymous, keyed by session id when present, else by client address.
func (r *identityResolver) Resolve(ctx context.Context, req models.IdentityRequest) (models.Identity, error) {
	log := logger.FromContext(ctx)

	if token := strings.TrimSpace(req.BearerToken); token != "" {
		user, err := r.authService.GetUserByToken(ctx, token)
		if err == nil {
			return r.registered(user), nil
		}

		if errors.Is(err, ErrTokenIsExpiredOrInvalid) {
			log.Debug().Msg("invalid token, treating caller as anonymous")
		} else {
			log.Warn().Err(err).Msg("user lookup failed, treating caller as anonymous")
		}
	}

	sessionID := strings.TrimSpace(req.SessionID)
	clientIP := strings.TrimSpace(req.ClientIP)

	identity := models.Identity{
		DailyLimit: r.guestLimit,
		SessionID:  sessionID,
		IPAddress:  clientIP,
	}

	switch {
	case sessionID != "":
		identity.Key = models.IdentityKey{Kind: models.IdentityKindSession, Value: sessionID}
	case clientIP != "":
		identity.Key = models.IdentityKey{Kind: models.IdentityKindIP, Value: clientIP}
	default:
		return models.Identity{}, ErrUnidentifiable
	}

	return identity, nil
}

func (r *identityResolver) registered(user models.User) models.Identity {
	userID := user.UserID

	// registered users never get less than guests
	limit := user.DailyLimit
	if limit < r.guestLimit {
		limit = r.guestLimit
	}

	return models.Identity{
		Key:          models.IdentityKey{Kind: models.IdentityKindUser, Value: strconv.FormatInt(userID, 10)},
		DailyLimit:   limit,
		IsRegistered: true,
		UserID:       &userID,
	}
}
