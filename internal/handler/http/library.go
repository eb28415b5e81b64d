package http

import (
	"net/http"

	"github.com/MKhiriev/meme-forge/internal/utils"
	"github.com/MKhiriev/meme-forge/models"
)

func (h *Handler) createCharacter(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCharacterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	character, err := h.services.LibraryService.CreateCharacter(r.Context(), userIDFromRequest(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, character, http.StatusCreated)
}

func (h *Handler) listCharacters(w http.ResponseWriter, r *http.Request) {
	characters, err := h.services.LibraryService.ListCharacters(r.Context(), userIDFromRequest(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, characters, http.StatusOK)
}

func (h *Handler) createAsset(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAssetRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	asset, err := h.services.LibraryService.CreateAsset(r.Context(), userIDFromRequest(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, asset, http.StatusCreated)
}

func (h *Handler) listAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := h.services.LibraryService.ListAssets(r.Context(), userIDFromRequest(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, assets, http.StatusOK)
}
