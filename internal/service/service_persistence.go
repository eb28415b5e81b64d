package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/meme-forge/internal/adapter"
	"github.com/MKhiriev/meme-forge/internal/logger"
	"github.com/MKhiriev/meme-forge/internal/store"
	"github.com/MKhiriev/meme-forge/internal/utils"
)

type imagePersister struct {
	downloader adapter.ImageDownloader
	blobStore  adapter.BlobStore
	memes      store.MemeRepository
	clock      utils.Clock
	logger     *logger.Logger
}

func NewImagePersister(downloader adapter.ImageDownloader, blobStore adapter.BlobStore, memes store.MemeRepository, clock utils.Clock, logger *logger.Logger) ImagePersister {
	return &imagePersister{
		downloader: downloader,
		blobStore:  blobStore,
		memes:      memes,
		clock:      clock,
		logger:     logger,
	}
}

func (p *imagePersister) Enabled() bool {
	return p.blobStore.Enabled()
}

// Persist copies the image at sourceURL into the blob store. Every failure
// is wrapped in ErrPersistenceDegraded. Nothing is downloaded while the
// blob store is disabled.
func (p *imagePersister) Persist(ctx context.Context, userID *int64, sourceURL string) (string, error) {
	if !p.blobStore.Enabled() {
		return "", fmt.Errorf("%w: %w", ErrPersistenceDegraded, adapter.ErrBlobStoreDisabled)
	}

	image, err := p.downloader.Download(ctx, sourceURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPersistenceDegraded, err)
	}

	key := adapter.BlobKey(userID, p.clock.Now())
	url, err := p.blobStore.Store(ctx, image.Data, key, image.ContentType)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPersistenceDegraded, err)
	}

	return url, nil
}

// RetryUnstored walks memes that kept the backend URL and stores them.
// A failing meme is skipped and retried on the next run.
func (p *imagePersister) RetryUnstored(ctx context.Context, since time.Time, limit int) (int, error) {
	log := logger.FromContext(ctx)

	if !p.blobStore.Enabled() {
		return 0, nil
	}

	memes, err := p.memes.ListUnstored(ctx, since, uint64(max(limit, 1)))
	if err != nil {
		return 0, fmt.Errorf("error listing unstored memes: %w", err)
	}

	stored := 0
	for _, meme := range memes {
		if ctx.Err() != nil {
			return stored, ctx.Err()
		}

		sourceURL := meme.SourceURL
		if sourceURL == "" {
			sourceURL = meme.ImageURL
		}

		url, err := p.Persist(ctx, meme.UserID, sourceURL)
		if errors.Is(err, adapter.ErrBlobStoreDisabled) {
			return stored, nil
		}
		if err != nil {
			log.Warn().Err(err).Int64("meme_id", meme.ID).Msg("retrying persistence failed")
			continue
		}

		err = p.memes.MarkStored(ctx, meme.ID, url)
		if errors.Is(err, store.ErrMemeNotFound) {
			// deleted or stored by a concurrent run
			continue
		}
		if err != nil {
			log.Err(err).Int64("meme_id", meme.ID).Msg("failed to mark meme as stored")
			continue
		}

		stored++
	}

	return stored, nil
}
