// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key, issuer and positive duration are required", ErrInvalidAppConfigs)
	}
	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost must be in [%d, %d]", ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if cfg.Quota.GuestDailyLimit <= 0 {
		return fmt.Errorf("%w: guest daily limit must be positive", ErrInvalidQuotaConfigs)
	}
	if cfg.Quota.UserDailyLimit < cfg.Quota.GuestDailyLimit {
		return fmt.Errorf("%w: user daily limit %d is below guest daily limit %d",
			ErrInvalidQuotaConfigs, cfg.Quota.UserDailyLimit, cfg.Quota.GuestDailyLimit)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.Blob.Bucket != "" && cfg.Storage.Blob.PublicBaseURL == "" {
		return fmt.Errorf("%w: blob public base URL is required when a bucket is set", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: HTTP address is required", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout <= cfg.Adapter.ImageBackend.Timeout+cfg.Adapter.PersistTimeout {
		return fmt.Errorf("%w: request timeout must exceed the image backend timeout plus the persist timeout", ErrInvalidServerConfigs)
	}

	if cfg.Adapter.ImageBackend.BaseURL == "" || cfg.Adapter.ImageBackend.APIKey == "" {
		return fmt.Errorf("%w: image backend base URL and API key are required", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.ImageBackend.Timeout <= 0 {
		return fmt.Errorf("%w: image backend timeout must be positive", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.PersistTimeout <= 0 {
		return fmt.Errorf("%w: persist timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.RetryInterval > 0 && cfg.Workers.RetryWindow <= 0 {
		return fmt.Errorf("%w: retry window must be positive when the retry worker is enabled", ErrInvalidWorkerConfigs)
	}

	return nil
}
