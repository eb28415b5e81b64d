package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/meme-forge/internal/config"
	"github.com/MKhiriev/meme-forge/internal/logger"
	"github.com/MKhiriev/meme-forge/internal/service"
	"github.com/MKhiriev/meme-forge/internal/utils"
)

// PersistenceRetryWorker re-attempts the blob copy of memes whose image
// still points at the temporary backend URL. Only memes created within the
// retry window are considered, since older backend URLs have expired.
type PersistenceRetryWorker struct {
	persister service.ImagePersister

	interval  time.Duration
	window    time.Duration
	batchSize int

	clock  utils.Clock
	logger *logger.Logger
}

func NewPersistenceRetryWorker(persister service.ImagePersister, cfg config.Workers, clock utils.Clock, logger *logger.Logger) *PersistenceRetryWorker {
	return &PersistenceRetryWorker{
		persister: persister,
		interval:  cfg.RetryInterval,
		window:    cfg.RetryWindow,
		batchSize: cfg.RetryBatchSize,
		clock:     clock,
		logger:    logger,
	}
}

func (w *PersistenceRetryWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Dur("window", w.window).Msg("persistence retry worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("persistence retry worker stopped")
			return
		case <-ticker.C:
			w.RetryOnce(ctx)
		}
	}
}

// RetryOnce runs a single retry pass and returns how many images were
// stored.
func (w *PersistenceRetryWorker) RetryOnce(ctx context.Context) int {
	since := w.clock.Now().Add(-w.window)

	stored, err := w.persister.RetryUnstored(ctx, since, w.batchSize)
	if err != nil {
		w.logger.Err(err).Msg("persistence retry failed")
		return stored
	}

	if stored > 0 {
		w.logger.Info().Int("stored", stored).Msg("degraded images persisted")
	}
	return stored
}
