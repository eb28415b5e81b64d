package validators

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"unicode/utf8"

	"github.com/MKhiriev/meme-forge/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldEmail       = "email"
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldPrompt      = "prompt"
	FieldAssetIDs    = "asset_ids"
	FieldBrandColors = "brand_colors"
	FieldLogo        = "logo_description"
	FieldName        = "name"
	FieldDescription = "description"
	FieldImageURL    = "image_url"
)

const (
	MaxPromptLength      = 1000
	MaxAssetsPerRequest  = 5
	MinPasswordLength    = 6
	maxColorLength       = 32
	maxDescriptionLength = 500
	maxNameLength        = 100
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)
)

// RequestValidator validates inbound request models.
type RequestValidator struct{}

// NewRequestValidator returns a Validator for the request models of the API.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. Supported types:
//   - models.RegisterRequest
//   - models.LoginRequest
//   - models.GenerateRequest
//   - models.CreateCharacterRequest
//   - models.CreateAssetRequest
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.GenerateRequest:
		return v.validateGenerate(value, fields...)
	case *models.GenerateRequest:
		return v.validateGenerate(*value, fields...)

	case models.CreateCharacterRequest:
		return v.validateCharacter(value, fields...)
	case *models.CreateCharacterRequest:
		return v.validateCharacter(*value, fields...)

	case models.CreateAssetRequest:
		return v.validateAsset(value, fields...)
	case *models.CreateAssetRequest:
		return v.validateAsset(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRegister(r models.RegisterRequest, fields ...string) error {
	if r.Email == "" || r.Username == "" || r.Password == "" {
		return ErrMissingFields
	}

	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !emailPattern.MatchString(r.Email) {
				return ErrInvalidEmail
			}
		case FieldUsername:
			if !usernamePattern.MatchString(r.Username) {
				return ErrInvalidUsername
			}
		case FieldPassword:
			if utf8.RuneCountInString(r.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateLogin only checks presence; format errors must not leak whether
// an account exists.
func (v *RequestValidator) validateLogin(r models.LoginRequest, fields ...string) error {
	if r.Email == "" || r.Password == "" {
		return ErrMissingFields
	}
	return nil
}

// validateGenerate checks the prompt and the optional decorations. Style and
// format are not validated: unknown values fall back to their defaults.
func (v *RequestValidator) validateGenerate(r models.GenerateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPrompt, FieldAssetIDs, FieldBrandColors, FieldLogo}
	}

	for _, f := range fields {
		switch f {
		case FieldPrompt:
			if isBlank(r.Prompt) {
				return ErrEmptyPrompt
			}
			if n := utf8.RuneCountInString(r.Prompt); n > MaxPromptLength {
				return fmt.Errorf("%w: %d characters, at most %d allowed", ErrPromptTooLong, n, MaxPromptLength)
			}
		case FieldAssetIDs:
			if len(r.AssetIDs) > MaxAssetsPerRequest {
				return fmt.Errorf("%w: at most %d allowed", ErrTooManyAssets, MaxAssetsPerRequest)
			}
			for _, id := range r.AssetIDs {
				if id <= 0 {
					return ErrInvalidAssetID
				}
			}
		case FieldBrandColors:
			if len(r.BrandColor1) > maxColorLength || len(r.BrandColor2) > maxColorLength {
				return ErrInvalidColor
			}
		case FieldLogo:
			if utf8.RuneCountInString(r.LogoDescription) > maxDescriptionLength {
				return fmt.Errorf("%w: logo description", ErrFieldTooLong)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCharacter(r models.CreateCharacterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldDescription, FieldImageURL}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if err := validateName(r.Name); err != nil {
				return err
			}
		case FieldDescription:
			if utf8.RuneCountInString(r.Description) > maxDescriptionLength ||
				utf8.RuneCountInString(r.StylePrompt) > maxDescriptionLength {
				return fmt.Errorf("%w: description", ErrFieldTooLong)
			}
		case FieldImageURL:
			if r.ReferenceImageURL != "" && !isHTTPURL(r.ReferenceImageURL) {
				return ErrInvalidImageURL
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateAsset(r models.CreateAssetRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldDescription, FieldImageURL}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if err := validateName(r.Name); err != nil {
				return err
			}
		case FieldDescription:
			if utf8.RuneCountInString(r.Description) > maxDescriptionLength {
				return fmt.Errorf("%w: description", ErrFieldTooLong)
			}
		case FieldImageURL:
			if !isHTTPURL(r.ImageURL) {
				return ErrInvalidImageURL
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateName(name string) error {
	if isBlank(name) {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return fmt.Errorf("%w: name", ErrFieldTooLong)
	}
	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
