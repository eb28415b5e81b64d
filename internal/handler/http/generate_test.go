package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/meme-forge/internal/service"
	"github.com/MKhiriev/meme-forge/models"
)

func TestGenerate_PassesIdentityMaterial(t *testing.T) {
	var got models.GenerateRequest
	h := newTestRouter(&service.Services{
		GenerationService: &fakeGenerationService{
			generateFn: func(_ context.Context, req models.GenerateRequest) (models.GenerateResult, error) {
				got = req
				return models.GenerateResult{MemeID: 11, ImageURL: "https://blob/11.png", RemainingQuota: 3, EnhancedPrompt: "secret"}, nil
			},
		},
	})
	h.trustProxyHeaders = true
	router := h.Init()

	rec := doRequest(t, router, http.MethodPost, "/api/generate",
		models.GenerateRequest{Prompt: "cat on the moon", Style: "cartoon", Format: "square"},
		map[string]string{
			"Authorization": "Bearer abc",
			sessionIDHeader: " sess-1 ",
			"X-Real-IP":     "203.0.113.9",
		})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cat on the moon", got.Prompt)
	assert.Equal(t, models.IdentityRequest{BearerToken: "abc", SessionID: "sess-1", ClientIP: "203.0.113.9"}, got.Identity)

	var result models.GenerateResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, int64(11), result.MemeID)
	assert.Equal(t, 3, result.RemainingQuota)
	assert.False(t, result.PersistenceDegraded)
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestGenerate_AnonymousWithoutHeaders(t *testing.T) {
	var got models.IdentityRequest
	router := newTestRouter(&service.Services{
		GenerationService: &fakeGenerationService{
			generateFn: func(_ context.Context, req models.GenerateRequest) (models.GenerateResult, error) {
				got = req.Identity
				return models.GenerateResult{}, nil
			},
		},
	}).Init()

	rec := doRequest(t, router, http.MethodPost, "/api/generate", models.GenerateRequest{Prompt: "x"},
		map[string]string{"Authorization": "garbage"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, got.BearerToken)
	assert.Empty(t, got.SessionID)
	assert.Equal(t, "192.0.2.1", got.ClientIP)
}

func TestGenerate_ProxyHeadersIgnoredByDefault(t *testing.T) {
	var got models.IdentityRequest
	router := newTestRouter(&service.Services{
		GenerationService: &fakeGenerationService{
			generateFn: func(_ context.Context, req models.GenerateRequest) (models.GenerateResult, error) {
				got = req.Identity
				return models.GenerateResult{}, nil
			},
		},
	}).Init()

	rec := doRequest(t, router, http.MethodPost, "/api/generate", models.GenerateRequest{Prompt: "x"},
		map[string]string{
			"X-Real-IP":       "203.0.113.9",
			"X-Forwarded-For": "198.51.100.7",
		})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "192.0.2.1", got.ClientIP)
}

func TestGenerate_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
	}{
		{"unidentifiable", service.ErrUnidentifiable, http.StatusUnauthorized, kindUnauthenticated},
		{"quota", &service.QuotaExceededError{Limit: 5, Used: 5}, http.StatusTooManyRequests, kindQuotaExceeded},
		{"invalid", fmt.Errorf("%w: prompt is required", service.ErrInvalidInput), http.StatusBadRequest, kindInvalidInput},
		{"backend", fmt.Errorf("%w: %w", service.ErrBackendFailure, context.DeadlineExceeded), http.StatusBadGateway, kindBackendError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&service.Services{
				GenerationService: &fakeGenerationService{
					generateFn: func(context.Context, models.GenerateRequest) (models.GenerateResult, error) {
						return models.GenerateResult{}, tt.err
					},
				},
			}).Init()

			rec := doRequest(t, router, http.MethodPost, "/api/generate", models.GenerateRequest{Prompt: "x"}, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeErrorBody(t, rec)
			assert.Equal(t, tt.wantKind, body.Error)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestGenerate_MalformedBody(t *testing.T) {
	called := false
	router := newTestRouter(&service.Services{
		GenerationService: &fakeGenerationService{
			generateFn: func(context.Context, models.GenerateRequest) (models.GenerateResult, error) {
				called = true
				return models.GenerateResult{}, nil
			},
		},
	}).Init()

	rec := doRequest(t, router, http.MethodPost, "/api/generate", `{"prompt":`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, kindInvalidInput, decodeErrorBody(t, rec).Error)
	assert.False(t, called)
}

func TestQuota(t *testing.T) {
	resetsAt := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("status", func(t *testing.T) {
		router := newTestRouter(&service.Services{
			IdentityResolver: &fakeIdentityResolver{
				resolveFn: func(_ context.Context, req models.IdentityRequest) (models.Identity, error) {
					assert.Equal(t, "sess-9", req.SessionID)
					return models.Identity{Key: models.IdentityKey{Kind: models.IdentityKindSession, Value: req.SessionID}, DailyLimit: 5}, nil
				},
			},
			QuotaLedger: &fakeQuotaLedger{
				remainingFn: func(_ context.Context, identity models.Identity) (models.QuotaStatus, error) {
					return models.QuotaStatus{Limit: identity.DailyLimit, Used: 2, Remaining: 3, ResetsAt: resetsAt}, nil
				},
			},
		}).Init()

		rec := doRequest(t, router, http.MethodGet, "/api/quota", nil, map[string]string{sessionIDHeader: "sess-9"})

		require.Equal(t, http.StatusOK, rec.Code)
		var status models.QuotaStatus
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
		assert.Equal(t, 5, status.Limit)
		assert.Equal(t, 3, status.Remaining)
		assert.True(t, resetsAt.Equal(status.ResetsAt))
	})

	t.Run("unidentifiable", func(t *testing.T) {
		router := newTestRouter(&service.Services{
			IdentityResolver: &fakeIdentityResolver{
				resolveFn: func(context.Context, models.IdentityRequest) (models.Identity, error) {
					return models.Identity{}, service.ErrUnidentifiable
				},
			},
		}).Init()

		rec := doRequest(t, router, http.MethodGet, "/api/quota", nil, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
