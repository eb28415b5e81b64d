package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/meme-forge/internal/config"
	"github.com/MKhiriev/meme-forge/internal/logger"
	"github.com/MKhiriev/meme-forge/internal/mock"
	"github.com/MKhiriev/meme-forge/internal/utils"
)

var retryCfg = config.Workers{
	RetryInterval:  10 * time.Millisecond,
	RetryWindow:    50 * time.Minute,
	RetryBatchSize: 20,
}

func TestPersistenceRetryWorker_RetryOnce(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 30, 0, 0, time.UTC)
	clock := &utils.FixedClock{T: now}

	t.Run("stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		persister := mock.NewMockImagePersister(ctrl)
		persister.EXPECT().RetryUnstored(gomock.Any(), now.Add(-50*time.Minute), 20).Return(3, nil)

		w := NewPersistenceRetryWorker(persister, retryCfg, clock, logger.Nop())
		assert.Equal(t, 3, w.RetryOnce(context.Background()))
	})

	t.Run("partial failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		persister := mock.NewMockImagePersister(ctrl)
		persister.EXPECT().RetryUnstored(gomock.Any(), gomock.Any(), 20).Return(1, errors.New("list failed"))

		w := NewPersistenceRetryWorker(persister, retryCfg, clock, logger.Nop())
		assert.Equal(t, 1, w.RetryOnce(context.Background()))
	})
}

func TestPersistenceRetryWorker_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	persister := mock.NewMockImagePersister(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	persister.EXPECT().RetryUnstored(gomock.Any(), gomock.Any(), 20).
		DoAndReturn(func(context.Context, time.Time, int) (int, error) {
			cancel()
			return 0, nil
		}).
		MinTimes(1)

	w := NewPersistenceRetryWorker(persister, retryCfg, utils.SystemClock{}, logger.Nop())

	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
}
