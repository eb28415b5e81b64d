// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// meme-forge server. It aggregates all sub-configurations and is populated
// by merging defaults, an optional .env file, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as password hashing cost,
	// token parameters, and the application version.
	App App `envPrefix:"APP_"`

	// Quota holds the daily generation limits of both identity classes.
	Quota Quota `envPrefix:"QUOTA_"`

	// Storage holds configuration for all persistence backends, including
	// the relational database and the image blob store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds configuration for external integrations.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds logger output settings.
	Log Log `envPrefix:"LOG_"`

	// Telemetry holds OpenTelemetry exporter settings.
	Telemetry Telemetry `envPrefix:"OTEL_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control security,
// token lifecycle, and versioning.
type App struct {
	// PasswordHashCost is the bcrypt cost factor used when hashing user
	// passwords. Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential. Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance. Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version endpoint. Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Quota holds the per-identity-class daily generation ceilings.
type Quota struct {
	// GuestDailyLimit applies to anonymous callers. Env: QUOTA_GUEST_DAILY_LIMIT
	GuestDailyLimit int `env:"GUEST_DAILY_LIMIT"`

	// UserDailyLimit is assigned to newly registered users.
	// Env: QUOTA_USER_DAILY_LIMIT
	UserDailyLimit int `env:"USER_DAILY_LIMIT"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Blob holds the S3-compatible object storage settings.
	Blob Blob `envPrefix:"BLOB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the database connection string. PostgreSQL URIs select the
	// pgx driver; "sqlite://<path>" or "file:<path>" selects the embedded
	// SQLite driver. Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns bounds the connection pool. Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`
}

// Blob holds S3-compatible object storage settings. When Bucket is empty
// generated images are not persisted and the backend URL is returned as-is.
type Blob struct {
	Bucket          string `env:"BUCKET"`
	Region          string `env:"REGION"`
	Endpoint        string `env:"ENDPOINT"`
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`

	// PublicBaseURL is the prefix of the public object URLs
	// (e.g. "https://cdn.example.com/memes-bucket").
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`

	// UsePathStyle enables path-style addressing, required by MinIO.
	UsePathStyle bool `env:"USE_PATH_STYLE"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format. Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health endpoint.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request. It must exceed the image backend timeout plus the persist
	// timeout.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown. Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// TrustProxyHeaders takes the client address from X-Forwarded-For or
	// X-Real-IP. Enable it only when every request passes a reverse proxy
	// that overwrites these headers, otherwise callers pick their own
	// guest quota key. Env: SERVER_TRUST_PROXY_HEADERS
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS"`
}

// Adapter holds configuration for external adapter integrations.
type Adapter struct {
	// ImageBackend configures the external image generation API.
	ImageBackend ImageBackend `envPrefix:"IMAGE_"`

	// PersistTimeout bounds copying a generated image into the blob store,
	// download included. On expiry the meme keeps the backend URL.
	// Env: ADAPTER_PERSIST_TIMEOUT
	PersistTimeout time.Duration `env:"PERSIST_TIMEOUT"`
}

// ImageBackend configures the OpenAI-compatible image generation API.
type ImageBackend struct {
	BaseURL string `env:"BASE_URL"`
	APIKey  string `env:"API_KEY"`
	Model   string `env:"MODEL"`

	// Quality is the backend quality enum ("standard" or "hd").
	Quality string `env:"QUALITY"`

	// Style is the backend style enum ("vivid" or "natural").
	Style string `env:"STYLE"`

	// Timeout bounds one generation call. On expiry the request fails with
	// a backend error and no quota is consumed. Env: ADAPTER_IMAGE_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RetryInterval is how often the persistence retry worker runs.
	// Zero disables the worker. Env: WORKERS_RETRY_INTERVAL
	RetryInterval time.Duration `env:"RETRY_INTERVAL"`

	// RetryWindow is how far back the worker looks for memes that still
	// point at the backend's temporary URL. Env: WORKERS_RETRY_WINDOW
	RetryWindow time.Duration `env:"RETRY_WINDOW"`

	// RetryBatchSize bounds the memes handled per run.
	RetryBatchSize int `env:"RETRY_BATCH_SIZE"`
}

// Log holds logger output settings.
type Log struct {
	// Level is the minimum zerolog level ("debug", "info", ...).
	Level string `env:"LEVEL"`

	// FilePath enables a rotated log file next to stdout output. The path
	// may contain strftime patterns. Env: LOG_FILE_PATH
	FilePath string `env:"FILE_PATH"`

	RotationTime time.Duration `env:"ROTATION_TIME"`
	MaxAge       time.Duration `env:"MAX_AGE"`
}

// Telemetry holds OpenTelemetry settings. Tracing is disabled when Endpoint
// is empty.
type Telemetry struct {
	Endpoint    string `env:"ENDPOINT"`
	ServiceName string `env:"SERVICE_NAME"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables (after loading an optional .env file)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(".env").
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
