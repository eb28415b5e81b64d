package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/meme-forge/internal/config"
	"github.com/MKhiriev/meme-forge/internal/logger"
	"github.com/MKhiriev/meme-forge/internal/utils"
)

// Default generation parameters sent to the backend. Only one image is
// requested per call.
const (
	defaultQuality = "standard"
	defaultStyle   = "vivid"
	imagesPerCall  = 1
)

type generateImageRequest struct {
	Model   string `json:"model,omitempty"`
	Prompt  string `json:"prompt"`
	N       int    `json:"n"`
	Size    string `json:"size"`
	Quality string `json:"quality,omitempty"`
	Style   string `json:"style,omitempty"`
}

type generateImageResponse struct {
	Created int64 `json:"created"`
	Data    []struct {
		URL           string `json:"url"`
		RevisedPrompt string `json:"revised_prompt"`
	} `json:"data"`
}

type openAIImageBackend struct {
	client *utils.HTTPClient

	model string
	style string

	logger *logger.Logger
}

// NewOpenAIImageBackend constructs an [ImageBackend] talking to an
// OpenAI-compatible "/images/generations" endpoint.
//
// Returns an error if cfg.BaseURL cannot be parsed as a URL.
func NewOpenAIImageBackend(cfg config.ImageBackend, logger *logger.Logger) (ImageBackend, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid image backend base url: %w", err)
	}

	client := utils.NewHTTPClient(cfg.Timeout)
	client.
		SetBaseURL(baseURL).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json")

	style := cfg.Style
	if style == "" {
		style = defaultStyle
	}

	return &openAIImageBackend{
		client: client,
		model:  cfg.Model,
		style:  style,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GenerateImage implements [ImageBackend]. It POSTs the prompt to
// /images/generations and returns the URL of the single generated image.
func (o *openAIImageBackend) GenerateImage(ctx context.Context, prompt, size, quality string) (string, error) {
	log := logger.FromContext(ctx)

	if quality == "" {
		quality = defaultQuality
	}

	var result generateImageResponse
	resp, err := o.client.R().
		SetContext(ctx).
		SetBody(generateImageRequest{
			Model:   o.model,
			Prompt:  prompt,
			N:       imagesPerCall,
			Size:    size,
			Quality: quality,
			Style:   o.style,
		}).
		SetResult(&result).
		Post("/images/generations")
	if err != nil {
		return "", fmt.Errorf("generate image request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Warn().Err(err).Str("func", "openAIImageBackend.GenerateImage").Int("status", resp.StatusCode()).Msg("image backend rejected request")
		return "", err
	}

	if len(result.Data) == 0 || result.Data[0].URL == "" {
		return "", ErrEmptyResponse
	}

	log.Debug().
		Str("func", "openAIImageBackend.GenerateImage").
		Dur("took", resp.Time()).
		Bool("prompt_revised", result.Data[0].RevisedPrompt != "").
		Msg("image generated")

	return result.Data[0].URL, nil
}
