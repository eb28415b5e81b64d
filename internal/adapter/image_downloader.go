package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/meme-forge/internal/utils"
)

// MaxImageSize bounds downloaded images.
const MaxImageSize = 20 << 20

const downloadRetries = 2

type httpImageDownloader struct {
	client *utils.HTTPClient
}

// NewHTTPImageDownloader returns an [ImageDownloader] that retries transient
// 5xx answers and connection errors. Bodies above [MaxImageSize] are cut off
// while reading.
func NewHTTPImageDownloader(timeout time.Duration) ImageDownloader {
	return newHTTPImageDownloader(timeout, MaxImageSize)
}

func newHTTPImageDownloader(timeout time.Duration, maxSize int) *httpImageDownloader {
	client := utils.NewHTTPClient(timeout)
	client.
		SetResponseBodyLimit(maxSize).
		SetRetryCount(downloadRetries).
		SetRetryWaitTime(200 * time.Millisecond).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if errors.Is(err, resty.ErrResponseBodyTooLarge) {
				return false
			}
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		})

	return &httpImageDownloader{client: client}
}

// Download implements [ImageDownloader].
func (d *httpImageDownloader) Download(ctx context.Context, url string) (Image, error) {
	resp, err := d.client.R().
		SetContext(ctx).
		Get(url)
	if errors.Is(err, resty.ErrResponseBodyTooLarge) {
		return Image{}, fmt.Errorf("%w: %w", ErrImageTooLarge, err)
	}
	if err != nil {
		return Image{}, fmt.Errorf("download image: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return Image{}, err
	}

	body := resp.Body()
	if len(body) == 0 {
		return Image{}, ErrEmptyResponse
	}

	contentType := resp.Header().Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(body)
	}

	return Image{Data: body, ContentType: contentType}, nil
}
