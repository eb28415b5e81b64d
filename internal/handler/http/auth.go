package http

import (
	"net/http"

	"github.com/MKhiriev/meme-forge/internal/logger"
	"github.com/MKhiriev/meme-forge/internal/utils"
	"github.com/MKhiriev/meme-forge/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.respondWithToken(w, r, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("user_id", user.UserID).Msg("user logged in")
	h.respondWithToken(w, r, user, http.StatusOK)
}

func (h *Handler) respondWithToken(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	utils.WriteJSON(w, models.AuthResponse{Token: token.SignedString, User: user}, status)
}

// newSession issues an anonymous session id. Clients send it back in
// X-Session-ID so their quota is not shared with everyone behind the same
// address.
func (h *Handler) newSession(w http.ResponseWriter, r *http.Request) {
	sessionID := utils.NewSessionID()

	w.Header().Set(sessionIDHeader, sessionID)
	utils.WriteJSON(w, models.SessionResponse{SessionID: sessionID}, http.StatusCreated)
}
