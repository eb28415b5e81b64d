package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingFields    = errors.New("missing required fields")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrInvalidUsername  = errors.New("username must be 3-20 characters, alphanumeric and underscore only")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrEmptyPrompt      = errors.New("prompt is required")
	ErrPromptTooLong    = errors.New("prompt is too long")
	ErrTooManyAssets    = errors.New("too many assets")
	ErrInvalidAssetID   = errors.New("invalid asset id")
	ErrInvalidColor     = errors.New("invalid brand color")
	ErrFieldTooLong     = errors.New("field is too long")
	ErrEmptyName        = errors.New("name is required")
	ErrInvalidImageURL  = errors.New("invalid image url")
)
