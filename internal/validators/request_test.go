// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/meme-forge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validRegister() models.RegisterRequest {
	return models.RegisterRequest{Email: "pepe@example.com", Username: "pepe_01", Password: "secret1"}
}

func validGenerate() models.GenerateRequest {
	return models.GenerateRequest{Prompt: "frog on the moon"}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}

func TestValidate_PointerAndValueForms(t *testing.T) {
	v := NewRequestValidator()
	req := validRegister()

	require.NoError(t, v.Validate(context.Background(), req))
	require.NoError(t, v.Validate(context.Background(), &req))
}

// ---------------------------------------------------------------------------
// RegisterRequest
// ---------------------------------------------------------------------------

func TestValidate_Register(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.RegisterRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.RegisterRequest) {}},
		{name: "missing email", mutate: func(r *models.RegisterRequest) { r.Email = "" }, wantErr: ErrMissingFields},
		{name: "missing password", mutate: func(r *models.RegisterRequest) { r.Password = "" }, wantErr: ErrMissingFields},
		{name: "email without at", mutate: func(r *models.RegisterRequest) { r.Email = "pepe.example.com" }, wantErr: ErrInvalidEmail},
		{name: "email without dot", mutate: func(r *models.RegisterRequest) { r.Email = "pepe@example" }, wantErr: ErrInvalidEmail},
		{name: "email with space", mutate: func(r *models.RegisterRequest) { r.Email = "pe pe@example.com" }, wantErr: ErrInvalidEmail},
		{name: "username too short", mutate: func(r *models.RegisterRequest) { r.Username = "pe" }, wantErr: ErrInvalidUsername},
		{name: "username too long", mutate: func(r *models.RegisterRequest) { r.Username = strings.Repeat("a", 21) }, wantErr: ErrInvalidUsername},
		{name: "username with dash", mutate: func(r *models.RegisterRequest) { r.Username = "pepe-frog" }, wantErr: ErrInvalidUsername},
		{name: "username 20 chars", mutate: func(r *models.RegisterRequest) { r.Username = strings.Repeat("a", 20) }},
		{name: "password too short", mutate: func(r *models.RegisterRequest) { r.Password = "12345" }, wantErr: ErrPasswordTooShort},
		{name: "password exactly 6", mutate: func(r *models.RegisterRequest) { r.Password = "123456" }},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegister()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_RegisterFieldScoping(t *testing.T) {
	v := NewRequestValidator()
	req := validRegister()
	req.Password = "123"

	assert.NoError(t, v.Validate(context.Background(), req, FieldEmail, FieldUsername))
	assert.ErrorIs(t, v.Validate(context.Background(), req, FieldPassword), ErrPasswordTooShort)
	assert.ErrorIs(t, v.Validate(context.Background(), req, "nickname"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// LoginRequest
// ---------------------------------------------------------------------------

func TestValidate_Login(t *testing.T) {
	v := NewRequestValidator()

	assert.NoError(t, v.Validate(context.Background(), models.LoginRequest{Email: "not-an-email", Password: "x"}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.LoginRequest{Email: "a@b.c"}), ErrMissingFields)
}

// ---------------------------------------------------------------------------
// GenerateRequest
// ---------------------------------------------------------------------------

func TestValidate_Generate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.GenerateRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.GenerateRequest) {}},
		{name: "unknown style tolerated", mutate: func(r *models.GenerateRequest) { r.Style = "vaporwave"; r.Format = "panorama" }},
		{name: "empty prompt", mutate: func(r *models.GenerateRequest) { r.Prompt = "" }, wantErr: ErrEmptyPrompt},
		{name: "blank prompt", mutate: func(r *models.GenerateRequest) { r.Prompt = " \n\t " }, wantErr: ErrEmptyPrompt},
		{name: "prompt at limit", mutate: func(r *models.GenerateRequest) { r.Prompt = strings.Repeat("é", MaxPromptLength) }},
		{name: "prompt over limit", mutate: func(r *models.GenerateRequest) { r.Prompt = strings.Repeat("a", MaxPromptLength+1) }, wantErr: ErrPromptTooLong},
		{name: "too many assets", mutate: func(r *models.GenerateRequest) { r.AssetIDs = []int64{1, 2, 3, 4, 5, 6} }, wantErr: ErrTooManyAssets},
		{name: "non-positive asset id", mutate: func(r *models.GenerateRequest) { r.AssetIDs = []int64{1, 0} }, wantErr: ErrInvalidAssetID},
		{name: "color too long", mutate: func(r *models.GenerateRequest) { r.BrandColor1 = strings.Repeat("f", 33) }, wantErr: ErrInvalidColor},
		{name: "logo too long", mutate: func(r *models.GenerateRequest) { r.LogoDescription = strings.Repeat("x", 501) }, wantErr: ErrFieldTooLong},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validGenerate()
			tt.mutate(&req)

			err := v.Validate(context.Background(), &req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// Characters and assets
// ---------------------------------------------------------------------------

func TestValidate_Character(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.CreateCharacterRequest{Name: "Sir Hops"}))
	assert.ErrorIs(t, v.Validate(ctx, models.CreateCharacterRequest{Name: "  "}), ErrEmptyName)
	assert.ErrorIs(t, v.Validate(ctx, models.CreateCharacterRequest{Name: "Hops", ReferenceImageURL: "ftp://x/y.png"}), ErrInvalidImageURL)
	assert.ErrorIs(t, v.Validate(ctx, models.CreateCharacterRequest{Name: strings.Repeat("n", 101)}), ErrFieldTooLong)
}

func TestValidate_Asset(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.CreateAssetRequest{Name: "Moon Coin", ImageURL: "https://cdn.example.com/coin.png"}))
	assert.ErrorIs(t, v.Validate(ctx, models.CreateAssetRequest{Name: "Moon Coin"}), ErrInvalidImageURL)
	assert.ErrorIs(t, v.Validate(ctx, &models.CreateAssetRequest{ImageURL: "https://cdn.example.com/coin.png"}), ErrEmptyName)
}
