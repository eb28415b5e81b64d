package http

import (
	"net"
	"net/http"
	"strings"

	"github.com/MKhiriev/meme-forge/internal/logger"
	"github.com/MKhiriev/meme-forge/internal/utils"
	"github.com/MKhiriev/meme-forge/models"
)

const sessionIDHeader = "X-Session-ID"

// auth rejects requests without a valid bearer token with 401
// unauthenticated. On success the user id is stored in the request context
// under [utils.UserIDCtxKey].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, ErrInvalidAuthorizationHeader)
			return
		}

		token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("token rejected")
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(r.Context(), token.UserID)))
	})
}

// identityFromRequest collects the optional identity material of the
// generation endpoints. A malformed Authorization header counts as absent.
func identityFromRequest(r *http.Request) models.IdentityRequest {
	token, _ := utils.ParseBearerToken(r.Header.Get("Authorization"))

	return models.IdentityRequest{
		BearerToken: token,
		SessionID:   strings.TrimSpace(r.Header.Get(sessionIDHeader)),
		ClientIP:    clientIP(r),
	}
}

// clientIP returns the caller address. With trusted proxy headers RealIP
// has already replaced RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
