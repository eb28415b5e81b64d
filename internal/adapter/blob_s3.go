package adapter

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/MKhiriev/meme-forge/internal/config"
	"github.com/MKhiriev/meme-forge/internal/logger"
)

const blobCacheControl = "public, max-age=31536000, immutable"

type s3BlobStore struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string

	logger *logger.Logger
}

// NewS3BlobStore builds a [BlobStore] on an S3-compatible bucket. With an
// empty cfg.Bucket it returns a store whose every call fails with
// [ErrBlobStoreDisabled], so generations keep the backend URL.
func NewS3BlobStore(ctx context.Context, cfg config.Blob, logger *logger.Logger) (BlobStore, error) {
	if cfg.Bucket == "" {
		logger.Warn().Msg("blob storage is not configured, generated images will keep temporary backend urls")
		return disabledBlobStore{}, nil
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return &s3BlobStore{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        logger,
	}, nil
}

func (s *s3BlobStore) Enabled() bool { return true }

// Store implements [BlobStore]. Objects are written publicly readable and
// cacheable forever since keys are never reused.
func (s *s3BlobStore) Store(ctx context.Context, data []byte, key, contentType string) (string, error) {
	if contentType == "" {
		contentType = "image/png"
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
		CacheControl:  aws.String(blobCacheControl),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "s3BlobStore.Store").Str("key", key).Msg("failed to put object")
		return "", fmt.Errorf("put object %q: %w", key, err)
	}

	return s.publicBaseURL + "/" + key, nil
}

type disabledBlobStore struct{}

func (disabledBlobStore) Enabled() bool { return false }

func (disabledBlobStore) Store(context.Context, []byte, string, string) (string, error) {
	return "", ErrBlobStoreDisabled
}

// BlobKey names the object of a generated meme:
// memes/{user<ID>|guest}_{unix-ms}_{random}.png
func BlobKey(userID *int64, at time.Time) string {
	prefix := "guest"
	if userID != nil {
		prefix = fmt.Sprintf("user%d", *userID)
	}
	return fmt.Sprintf("memes/%s_%d_%s.png", prefix, at.UnixMilli(), uuid.NewString()[:8])
}
