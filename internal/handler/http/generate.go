package http

import (
	"net/http"

	"github.com/MKhiriev/meme-forge/internal/utils"
	"github.com/MKhiriev/meme-forge/models"
)

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	req.Identity = identityFromRequest(r)

	result, err := h.services.GenerationService.Generate(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) quota(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, err := h.services.IdentityResolver.Resolve(ctx, identityFromRequest(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	status, err := h.services.QuotaLedger.Remaining(ctx, identity)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}
