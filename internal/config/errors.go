package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid token or hashing settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidQuotaConfigs indicates non-positive limits or a user limit
	// below the guest limit.
	ErrInvalidQuotaConfigs = errors.New("invalid quota configuration")
	// ErrInvalidStorageConfigs indicates a missing DSN or incomplete blob
	// settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	ErrInvalidServerConfigs  = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates incomplete image backend settings.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	ErrInvalidWorkerConfigs  = errors.New("invalid worker configuration")
)
