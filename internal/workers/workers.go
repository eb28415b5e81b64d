package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/meme-forge/internal/config"
	"github.com/MKhiriev/meme-forge/internal/logger"
	"github.com/MKhiriev/meme-forge/internal/service"
	"github.com/MKhiriev/meme-forge/internal/utils"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds every enabled background job. The persistence retry
// worker needs a configured blob store.
func NewWorkers(services *service.Services, cfg config.Workers, clock utils.Clock, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.RetryInterval > 0 && services.ImagePersister != nil && services.ImagePersister.Enabled() {
		w.workers = append(w.workers, NewPersistenceRetryWorker(services.ImagePersister, cfg, clock, logger))
	}

	return w
}

// Run starts all workers and waits for them to return.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
