package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	if h.trustProxyHeaders {
		router.Use(middleware.RealIP)
	}
	router.Use(
		middleware.Recoverer,
		withTracing,
		h.withTraceID,
		h.withLogging,
		withGZip,
	)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/session", h.newSession)
		r.Get("/api/version", h.getServerVersion)

		r.Get("/api/community/memes", h.community)
		r.Get("/api/community/memes/{id}", h.viewMeme)
		r.Post("/api/community/memes/{id}/like", h.likeMeme)
	})

	// optional bearer token, session id or client address
	router.Group(func(r chi.Router) {
		r.Post("/api/generate", h.generate)
		r.Get("/api/quota", h.quota)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/dashboard", h.dashboard)
		r.Patch("/api/memes/{id}/visibility", h.setVisibility)
		r.Delete("/api/memes/{id}", h.deleteMeme)

		r.Post("/api/characters", h.createCharacter)
		r.Get("/api/characters", h.listCharacters)
		r.Post("/api/assets", h.createAsset)
		r.Get("/api/assets", h.listAssets)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
