package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/meme-forge/internal/adapter"
	"github.com/MKhiriev/meme-forge/internal/config"
	"github.com/MKhiriev/meme-forge/internal/handler"
	"github.com/MKhiriev/meme-forge/internal/logger"
	"github.com/MKhiriev/meme-forge/internal/server"
	"github.com/MKhiriev/meme-forge/internal/service"
	"github.com/MKhiriev/meme-forge/internal/store"
	"github.com/MKhiriev/meme-forge/internal/telemetry"
	"github.com/MKhiriev/meme-forge/internal/utils"
	"github.com/MKhiriev/meme-forge/internal/workers"
	"github.com/MKhiriev/meme-forge/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("meme-forge").Fatal().Err(err).Msg("error getting configs")
	}

	log, err := logger.New("meme-forge", cfg.Log)
	if err != nil {
		logger.NewLogger("meme-forge").Fatal().Err(err).Msg("error creating logger")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err = run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	shutdownTelemetry, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("error setting up telemetry: %w", err)
	}
	defer func() {
		if err := shutdownTelemetry(context.WithoutCancel(ctx)); err != nil {
			log.Err(err).Msg("error flushing traces")
		}
	}()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error connecting database: %w", err)
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}

	adapters, err := newAdapters(ctx, cfg, log)
	if err != nil {
		return err
	}

	clock := utils.SystemClock{}
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	services, err := service.NewServices(store.NewStorages(db, log), adapters, cfg, buildInfo, clock, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, db, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	go workers.NewWorkers(services, cfg.Workers, clock, log).Run(ctx)

	return srv.RunServer(ctx)
}

func newAdapters(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (service.Adapters, error) {
	backend, err := adapter.NewOpenAIImageBackend(cfg.Adapter.ImageBackend, log)
	if err != nil {
		return service.Adapters{}, fmt.Errorf("error creating image backend: %w", err)
	}

	blobs, err := adapter.NewS3BlobStore(ctx, cfg.Storage.Blob, log)
	if err != nil {
		return service.Adapters{}, fmt.Errorf("error creating blob store: %w", err)
	}

	return service.Adapters{
		ImageBackend: backend,
		Downloader:   adapter.NewHTTPImageDownloader(cfg.Adapter.PersistTimeout),
		BlobStore:    blobs,
	}, nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
