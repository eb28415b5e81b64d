package http

import (
	"net/http"

	"github.com/MKhiriev/meme-forge/internal/utils"
	"github.com/MKhiriev/meme-forge/models"
)

type likeResponse struct {
	ID    int64 `json:"id"`
	Likes int   `json:"likes"`
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	dashboard, err := h.services.MemeService.Dashboard(r.Context(), userIDFromRequest(r), page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, dashboard, http.StatusOK)
}

func (h *Handler) setVisibility(w http.ResponseWriter, r *http.Request) {
	memeID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.VisibilityRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.MemeService.SetVisibility(r.Context(), userIDFromRequest(r), memeID, req.IsPublic); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteMeme(w http.ResponseWriter, r *http.Request) {
	memeID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.MemeService.DeleteMeme(r.Context(), userIDFromRequest(r), memeID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) community(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	memes, err := h.services.MemeService.Community(r.Context(), page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, memes, http.StatusOK)
}

func (h *Handler) viewMeme(w http.ResponseWriter, r *http.Request) {
	memeID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	meme, err := h.services.MemeService.ViewMeme(r.Context(), memeID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, meme, http.StatusOK)
}

func (h *Handler) likeMeme(w http.ResponseWriter, r *http.Request) {
	memeID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	likes, err := h.services.MemeService.LikeMeme(r.Context(), memeID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, likeResponse{ID: memeID, Likes: likes}, http.StatusOK)
}
