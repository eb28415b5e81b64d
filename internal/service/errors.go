package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
)

// Generation pipeline rejections returned by [GenerationService.Generate].
// Storage failures while counting quota are returned as they are.
var (
	// ErrUnidentifiable is returned when the caller has neither a valid
	// token, a session id nor a client address.
	ErrUnidentifiable = errors.New("caller cannot be identified")

	// ErrQuotaExceeded is wrapped by [QuotaExceededError].
	ErrQuotaExceeded = errors.New("daily generation limit reached")

	ErrInvalidInput = errors.New("invalid input")

	// ErrBackendFailure covers backend errors, timeouts, caller
	// disconnects and failures to record the finished generation.
	ErrBackendFailure = errors.New("image generation failed")

	// ErrPersistenceDegraded marks a failed blob copy. It never fails a
	// generation; the backend URL is kept instead.
	ErrPersistenceDegraded = errors.New("image persistence degraded")
)

// QuotaExceededError reports a rejected generation together with the limit
// that was hit.
type QuotaExceededError struct {
	Limit        int
	Used         int
	IsRegistered bool
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("%s: %d of %d used", ErrQuotaExceeded, e.Used, e.Limit)
}

func (e *QuotaExceededError) Unwrap() error {
	return ErrQuotaExceeded
}
