package http

import (
	"github.com/MKhiriev/meme-forge/internal/config"
	"github.com/MKhiriev/meme-forge/internal/logger"
	"github.com/MKhiriev/meme-forge/internal/service"
)

type Handler struct {
	services *service.Services

	// trustProxyHeaders lets X-Forwarded-For and X-Real-IP replace the
	// peer address. Only set it behind a proxy that overwrites them.
	trustProxyHeaders bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Bool("trust_proxy_headers", cfg.TrustProxyHeaders).Msg("http handler created")
	return &Handler{
		services:          services,
		trustProxyHeaders: cfg.TrustProxyHeaders,
		logger:            logger,
	}
}
