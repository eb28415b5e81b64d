// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the clients of the external collaborators of the
// generation pipeline: the image generation backend, the image downloader
// and the blob store.
//
// Every adapter maps transport failures to the sentinel values in errors.go
// so that callers can use [errors.Is] without knowing the protocol.
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ImageBackend generates one image for a fully synthesized prompt.
type ImageBackend interface {
	// GenerateImage returns the URL of the generated image. The URL is
	// temporary: the backend expires it after a while.
	GenerateImage(ctx context.Context, prompt, size, quality string) (string, error)
}

// ImageDownloader fetches the bytes behind an image URL.
type ImageDownloader interface {
	Download(ctx context.Context, url string) (Image, error)
}

// BlobStore persists image bytes under a key and returns their public URL.
type BlobStore interface {
	// Enabled reports whether a bucket is configured. A disabled store
	// fails every Store call with [ErrBlobStoreDisabled].
	Enabled() bool
	Store(ctx context.Context, data []byte, key, contentType string) (string, error)
}

// Image is a downloaded image.
type Image struct {
	Data        []byte
	ContentType string
}
