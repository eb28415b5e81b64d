package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/meme-forge/internal/app"
	"github.com/MKhiriev/meme-forge/internal/logger"
	"github.com/MKhiriev/meme-forge/internal/service"
	"github.com/MKhiriev/meme-forge/internal/store"
	"github.com/MKhiriev/meme-forge/internal/utils"
	"github.com/MKhiriev/meme-forge/models"
)

// Rejection kinds of the error body.
const (
	kindUnauthenticated = "unauthenticated"
	kindQuotaExceeded   = "quota_exceeded"
	kindInvalidInput    = "invalid_input"
	kindBackendError    = "backend_error"
	kindNotFound        = "not_found"
	kindConflict        = "conflict"
	kindInternal        = "internal_error"
)

type errorKind struct {
	kind   string
	status int
}

// generationKinds is checked in order before errorStatusMap. A pipeline
// error may wrap a lower level error, so its kind must win.
var generationKinds = []struct {
	target error
	kind   errorKind
}{
	{service.ErrUnidentifiable, errorKind{kindUnauthenticated, http.StatusUnauthorized}},
	{service.ErrQuotaExceeded, errorKind{kindQuotaExceeded, http.StatusTooManyRequests}},
	{service.ErrInvalidInput, errorKind{kindInvalidInput, http.StatusBadRequest}},
	{service.ErrBackendFailure, errorKind{kindBackendError, http.StatusBadGateway}},
}

var errorStatusMap = map[error]int{
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	ErrEmptyAuthorizationHeader:        http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader:      http.StatusUnauthorized,
	ErrInvalidJSON:                     http.StatusBadRequest,
	ErrInvalidParam:                    http.StatusBadRequest,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrMemeNotFound:       http.StatusNotFound,
	store.ErrCharacterNotFound:  http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// generationErrorKind maps the pipeline rejection taxonomy.
func generationErrorKind(err error) (errorKind, bool) {
	for _, k := range generationKinds {
		if errors.Is(err, k.target) {
			return k.kind, true
		}
	}
	return errorKind{}, false
}

func statusFromError(err error) int {
	if k, ok := generationErrorKind(err); ok {
		return k.status
	}
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func kindFromStatus(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return kindUnauthenticated
	case http.StatusTooManyRequests:
		return kindQuotaExceeded
	case http.StatusBadRequest:
		return kindInvalidInput
	case http.StatusBadGateway:
		return kindBackendError
	case http.StatusNotFound:
		return kindNotFound
	case http.StatusConflict:
		return kindConflict
	default:
		return kindInternal
	}
}

// writeError renders err as a typed JSON rejection. Server side details are
// logged but never sent.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	body := models.ErrorResponse{
		Error:   kindFromStatus(status),
		Message: err.Error(),
	}

	switch {
	case status == http.StatusBadGateway:
		body.Message = service.ErrBackendFailure.Error()
		log.Warn().Err(err).Int("status", status).Msg("request failed")
	case status >= http.StatusInternalServerError:
		body.Message = http.StatusText(status)
		log.Err(err).Int("status", status).Msg("request failed")
	default:
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	var exceeded *service.QuotaExceededError
	if errors.As(err, &exceeded) {
		limit, remaining := exceeded.Limit, max(exceeded.Limit-exceeded.Used, 0)
		body.Limit = &limit
		body.Remaining = &remaining
		body.Message = quotaMessage(exceeded)
	}

	utils.WriteJSON(w, body, status)
}

func quotaMessage(e *service.QuotaExceededError) string {
	if e.IsRegistered {
		return app.MsgQuotaReachedRegistered
	}
	return app.MsgQuotaReachedAnonymous
}
