package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrRateLimited         = errors.New("rate limited")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnavailable         = errors.New("service unavailable")

	// ErrContentPolicy is returned when the backend refuses a prompt.
	ErrContentPolicy = errors.New("prompt rejected by content policy")

	// ErrEmptyResponse is returned when a backend answers 2xx without an
	// image.
	ErrEmptyResponse = errors.New("backend returned no image")

	ErrImageTooLarge = errors.New("image exceeds size limit")

	// ErrBlobStoreDisabled is returned by the blob store when no bucket is
	// configured.
	ErrBlobStoreDisabled = errors.New("blob store is not configured")
)
