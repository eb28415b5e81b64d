package handler

import (
	"github.com/MKhiriev/meme-forge/internal/config"
	"github.com/MKhiriev/meme-forge/internal/handler/grpc"
	"github.com/MKhiriev/meme-forge/internal/handler/http"
	"github.com/MKhiriev/meme-forge/internal/logger"
	"github.com/MKhiriev/meme-forge/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers builds a handler for every transport with a configured
// address. The gRPC transport serves health checks backed by pinger.
func NewHandlers(services *service.Services, pinger grpc.Pinger, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(pinger, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
