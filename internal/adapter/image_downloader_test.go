package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func TestDownload_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(pngHeader)
	}))
	defer srv.Close()

	img, err := NewHTTPImageDownloader(time.Second).Download(context.Background(), srv.URL+"/img.png")
	require.NoError(t, err)
	assert.Equal(t, pngHeader, img.Data)
	assert.Equal(t, "image/png", img.ContentType)
}

func TestDownload_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write(pngHeader)
	}))
	defer srv.Close()

	img, err := NewHTTPImageDownloader(time.Second).Download(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, "image/png", img.ContentType)
}

func TestDownload_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewHTTPImageDownloader(time.Second).Download(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDownload_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, err := NewHTTPImageDownloader(time.Second).Download(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestDownload_TooLarge(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write(pngHeader)
	}))
	defer srv.Close()

	_, err := newHTTPImageDownloader(time.Second, len(pngHeader)-1).Download(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrImageTooLarge)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDownload_AtLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(pngHeader)
	}))
	defer srv.Close()

	img, err := newHTTPImageDownloader(time.Second, len(pngHeader)).Download(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, img.Data)
}
