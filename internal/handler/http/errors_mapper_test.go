package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/meme-forge/internal/app"
	"github.com/MKhiriev/meme-forge/internal/service"
	"github.com/MKhiriev/meme-forge/internal/store"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unidentifiable", service.ErrUnidentifiable, http.StatusUnauthorized},
		{"quota", &service.QuotaExceededError{Limit: 5, Used: 5}, http.StatusTooManyRequests},
		{"invalid input", fmt.Errorf("%w: prompt is empty", service.ErrInvalidInput), http.StatusBadRequest},
		{"backend", fmt.Errorf("%w: timeout", service.ErrBackendFailure), http.StatusBadGateway},
		{"backend wrapping store error", fmt.Errorf("%w: %w", service.ErrBackendFailure, store.ErrExecutingQuery), http.StatusBadGateway},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"email taken", store.ErrEmailAlreadyExists, http.StatusConflict},
		{"meme not found", fmt.Errorf("delete: %w", store.ErrMemeNotFound), http.StatusNotFound},
		{"bad param", ErrInvalidParam, http.StatusBadRequest},
		{"storage", store.ErrExecutingQuery, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestGenerationErrorKind(t *testing.T) {
	k, ok := generationErrorKind(fmt.Errorf("%w: %w", service.ErrInvalidInput, store.ErrCharacterNotFound))
	require.True(t, ok)
	assert.Equal(t, kindInvalidInput, k.kind)

	_, ok = generationErrorKind(store.ErrCharacterNotFound)
	assert.False(t, ok)
}

func TestWriteError_QuotaBody(t *testing.T) {
	tests := []struct {
		name          string
		err           *service.QuotaExceededError
		wantLimit     int
		wantMessage   string
		wantRemaining int
	}{
		{
			name:        "anonymous",
			err:         &service.QuotaExceededError{Limit: 5, Used: 5},
			wantLimit:   5,
			wantMessage: app.MsgQuotaReachedAnonymous,
		},
		{
			name:        "registered overshoot",
			err:         &service.QuotaExceededError{Limit: 40, Used: 42, IsRegistered: true},
			wantLimit:   40,
			wantMessage: app.MsgQuotaReachedRegistered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, httptest.NewRequest(http.MethodPost, "/api/generate", nil), tt.err)

			assert.Equal(t, http.StatusTooManyRequests, rec.Code)
			body := decodeErrorBody(t, rec)
			assert.Equal(t, kindQuotaExceeded, body.Error)
			assert.Equal(t, tt.wantMessage, body.Message)
			require.NotNil(t, body.Limit)
			require.NotNil(t, body.Remaining)
			assert.Equal(t, tt.wantLimit, *body.Limit)
			assert.Equal(t, tt.wantRemaining, *body.Remaining)
		})
	}
}

func TestWriteError_HidesServerDetails(t *testing.T) {
	t.Run("backend", func(t *testing.T) {
		rec := httptest.NewRecorder()
		err := fmt.Errorf("%w: upstream said api key sk-123 is invalid", service.ErrBackendFailure)
		writeError(rec, httptest.NewRequest(http.MethodPost, "/api/generate", nil), err)

		body := decodeErrorBody(t, rec)
		assert.Equal(t, kindBackendError, body.Error)
		assert.Equal(t, service.ErrBackendFailure.Error(), body.Message)
		assert.NotContains(t, rec.Body.String(), "sk-123")
	})

	t.Run("internal", func(t *testing.T) {
		rec := httptest.NewRecorder()
		writeError(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil), fmt.Errorf("%w: relation memes", store.ErrExecutingQuery))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeErrorBody(t, rec)
		assert.Equal(t, kindInternal, body.Error)
		assert.Equal(t, http.StatusText(http.StatusInternalServerError), body.Message)
		assert.Nil(t, body.Limit)
	})
}
