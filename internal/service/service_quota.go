package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/meme-forge/internal/logger"
	"github.com/MKhiriev/meme-forge/internal/store"
	"github.com/MKhiriev/meme-forge/internal/utils"
	"github.com/MKhiriev/meme-forge/models"
)

// quotaLedger counts generation events from the start of the current
// local calendar day of clock. Count and record are not serialized per key,
// so concurrent requests of one identity may overshoot the limit by the
// number of requests in flight.
type quotaLedger struct {
	generations store.GenerationRepository
	clock       utils.Clock
	logger      *logger.Logger
}

func NewQuotaLedger(generations store.GenerationRepository, clock utils.Clock, logger *logger.Logger) QuotaLedger {
	return &quotaLedger{
		generations: generations,
		clock:       clock,
		logger:      logger,
	}
}

func (q *quotaLedger) CountToday(ctx context.Context, key models.IdentityKey) (int, error) {
	count, err := q.generations.CountSince(ctx, key, utils.StartOfDay(q.clock.Now()))
	if err != nil {
		return 0, fmt.Errorf("error counting generations of %s: %w", key, err)
	}
	return count, nil
}

// RecordEvent appends an event for key at the current clock time.
func (q *quotaLedger) RecordEvent(ctx context.Context, key models.IdentityKey) error {
	event := models.GenerationEvent{CreatedAt: q.clock.Now()}

	switch key.Kind {
	case models.IdentityKindUser:
		userID, err := strconv.ParseInt(key.Value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user identity %q: %w", key.Value, err)
		}
		event.UserID = &userID
	case models.IdentityKindSession:
		event.SessionID = &key.Value
	case models.IdentityKindIP:
		event.IPAddress = &key.Value
	default:
		return fmt.Errorf("unknown identity kind %q", key.Kind)
	}

	if _, err := q.generations.InsertEvent(ctx, event); err != nil {
		return fmt.Errorf("error recording generation of %s: %w", key, err)
	}
	return nil
}

// Check admits the identity while count < limit. Reaching the limit
// exactly is a rejection.
func (q *quotaLedger) Check(ctx context.Context, identity models.Identity) (int, error) {
	used, err := q.CountToday(ctx, identity.Key)
	if err != nil {
		return 0, err
	}

	if used >= identity.DailyLimit {
		logger.FromContext(ctx).Info().
			Str("identity", identity.Key.String()).
			Int("used", used).
			Int("limit", identity.DailyLimit).
			Msg("daily quota exhausted")
		return used, &QuotaExceededError{Limit: identity.DailyLimit, Used: used, IsRegistered: identity.IsRegistered}
	}

	return used, nil
}

func (q *quotaLedger) Remaining(ctx context.Context, identity models.Identity) (models.QuotaStatus, error) {
	used, err := q.CountToday(ctx, identity.Key)
	if err != nil {
		return models.QuotaStatus{}, err
	}

	return models.QuotaStatus{
		Limit:        identity.DailyLimit,
		Used:         used,
		Remaining:    max(identity.DailyLimit-used, 0),
		IsRegistered: identity.IsRegistered,
		ResetsAt:     utils.NextDay(q.clock.Now()),
	}, nil
}
