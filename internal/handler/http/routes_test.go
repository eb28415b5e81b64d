package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/meme-forge/internal/service"
	"github.com/MKhiriev/meme-forge/models"
)

func doRequest(t *testing.T, h http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

var bearer = map[string]string{"Authorization": "Bearer valid"}

func TestRoutes_UnknownMethodAnswersNotFound(t *testing.T) {
	router := newTestRouter(&service.Services{}).Init()

	rec := doRequest(t, router, http.MethodPut, "/api/auth/login", nil, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, kindNotFound, decodeErrorBody(t, rec).Error)
}

func TestRoutes_UnknownPath(t *testing.T) {
	router := newTestRouter(&service.Services{}).Init()

	rec := doRequest(t, router, http.MethodGet, "/api/nowhere", nil, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_AuthRequired(t *testing.T) {
	router := newTestRouter(&service.Services{}).Init()

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/dashboard"},
		{http.MethodPatch, "/api/memes/1/visibility"},
		{http.MethodDelete, "/api/memes/1"},
		{http.MethodPost, "/api/characters"},
		{http.MethodGet, "/api/characters"},
		{http.MethodPost, "/api/assets"},
		{http.MethodGet, "/api/assets"},
	}

	for _, p := range protected {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			rec := doRequest(t, router, p.method, p.path, nil, nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, kindUnauthenticated, decodeErrorBody(t, rec).Error)

			rec = doRequest(t, router, p.method, p.path, nil, map[string]string{"Authorization": "Basic abc"})
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			rec = doRequest(t, router, p.method, p.path, nil, map[string]string{"Authorization": "Bearer expired"})
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRoutes_Version(t *testing.T) {
	router := newTestRouter(&service.Services{AppInfoService: &fakeAppInfoService{version: "1.4.0"}}).Init()

	rec := doRequest(t, router, http.MethodGet, "/api/version", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var info models.VersionInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "1.4.0", info.Version)
}
