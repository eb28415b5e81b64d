package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/meme-forge/internal/logger"
	"github.com/MKhiriev/meme-forge/internal/mock"
	"github.com/MKhiriev/meme-forge/internal/utils"
	"github.com/MKhiriev/meme-forge/models"
)

var testMidnight = time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)

func newTestQuota(t *testing.T) (QuotaLedger, *mock.MockGenerationRepository) {
	t.Helper()
	generations := mock.NewMockGenerationRepository(gomock.NewController(t))
	return NewQuotaLedger(generations, &utils.FixedClock{T: testNow}, logger.Nop()), generations
}

func guestIdentity(session string, limit int) models.Identity {
	return models.Identity{
		Key:        models.IdentityKey{Kind: models.IdentityKindSession, Value: session},
		DailyLimit: limit,
		SessionID:  session,
	}
}

func TestQuotaLedger_CountToday_StartsAtMidnight(t *testing.T) {
	quota, generations := newTestQuota(t)
	key := models.IdentityKey{Kind: models.IdentityKindIP, Value: "10.0.0.1"}

	generations.EXPECT().CountSince(gomock.Any(), key, testMidnight).Return(3, nil)

	used, err := quota.CountToday(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, 3, used)
}

func TestQuotaLedger_Check(t *testing.T) {
	tests := []struct {
		name     string
		used     int
		limit    int
		rejected bool
	}{
		{name: "fresh", used: 0, limit: 5},
		{name: "last one left", used: 4, limit: 5},
		{name: "exactly at limit", used: 5, limit: 5, rejected: true},
		{name: "over limit", used: 7, limit: 5, rejected: true},
		{name: "zero limit", used: 0, limit: 0, rejected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quota, generations := newTestQuota(t)
			generations.EXPECT().CountSince(gomock.Any(), gomock.Any(), testMidnight).Return(tt.used, nil)

			used, err := quota.Check(context.Background(), guestIdentity("s", tt.limit))
			assert.Equal(t, tt.used, used)

			if !tt.rejected {
				assert.NoError(t, err)
				return
			}

			var exceeded *QuotaExceededError
			require.ErrorAs(t, err, &exceeded)
			assert.ErrorIs(t, err, ErrQuotaExceeded)
			assert.Equal(t, tt.limit, exceeded.Limit)
			assert.Equal(t, tt.used, exceeded.Used)
			assert.False(t, exceeded.IsRegistered)
		})
	}
}

func TestQuotaLedger_Check_CountFailure(t *testing.T) {
	quota, generations := newTestQuota(t)
	dbErr := errors.New("db down")

	generations.EXPECT().CountSince(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, dbErr)

	_, err := quota.Check(context.Background(), guestIdentity("s", 5))
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrQuotaExceeded)
}

func TestQuotaLedger_Remaining(t *testing.T) {
	quota, generations := newTestQuota(t)
	generations.EXPECT().CountSince(gomock.Any(), gomock.Any(), gomock.Any()).Return(7, nil)

	status, err := quota.Remaining(context.Background(), guestIdentity("s", 5))
	require.NoError(t, err)

	assert.Equal(t, models.QuotaStatus{
		Limit:     5,
		Used:      7,
		Remaining: 0,
		ResetsAt:  testMidnight.AddDate(0, 0, 1),
	}, status)
}

func TestQuotaLedger_RecordEvent(t *testing.T) {
	tests := []struct {
		name  string
		key   models.IdentityKey
		check func(t *testing.T, e models.GenerationEvent)
	}{
		{
			name: "user",
			key:  models.IdentityKey{Kind: models.IdentityKindUser, Value: "7"},
			check: func(t *testing.T, e models.GenerationEvent) {
				require.NotNil(t, e.UserID)
				assert.Equal(t, int64(7), *e.UserID)
				assert.Nil(t, e.SessionID)
			},
		},
		{
			name: "session",
			key:  models.IdentityKey{Kind: models.IdentityKindSession, Value: "sess"},
			check: func(t *testing.T, e models.GenerationEvent) {
				require.NotNil(t, e.SessionID)
				assert.Equal(t, "sess", *e.SessionID)
				assert.Nil(t, e.UserID)
			},
		},
		{
			name: "ip",
			key:  models.IdentityKey{Kind: models.IdentityKindIP, Value: "10.0.0.1"},
			check: func(t *testing.T, e models.GenerationEvent) {
				require.NotNil(t, e.IPAddress)
				assert.Equal(t, "10.0.0.1", *e.IPAddress)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quota, generations := newTestQuota(t)
			generations.EXPECT().InsertEvent(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, e models.GenerationEvent) (models.GenerationEvent, error) {
					assert.Equal(t, testNow, e.CreatedAt)
					tt.check(t, e)
					return e, nil
				},
			)

			require.NoError(t, quota.RecordEvent(context.Background(), tt.key))
		})
	}
}

func TestQuotaLedger_RecordEvent_BadKey(t *testing.T) {
	quota, _ := newTestQuota(t)

	assert.Error(t, quota.RecordEvent(context.Background(), models.IdentityKey{Kind: models.IdentityKindUser, Value: "abc"}))
	assert.Error(t, quota.RecordEvent(context.Background(), models.IdentityKey{Kind: "device", Value: "x"}))
}
