package models

import "strings"

// Style is the closed set of style presets a generation may request.
type Style int

const (
	// StyleGeneral is the default preset used for empty or unknown values.
	StyleGeneral Style = iota
	StylePepe
	StyleWojak
	StyleCartoon
)

// ParseStyle maps a request value to a Style. Unknown and empty values fall
// back to [StyleGeneral].
func ParseStyle(s string) Style {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pepe":
		return StylePepe
	case "wojak":
		return StyleWojak
	case "cartoon":
		return StyleCartoon
	default:
		return StyleGeneral
	}
}

// String returns the canonical request value of the style.
func (s Style) String() string {
	switch s {
	case StylePepe:
		return "pepe"
	case StyleWojak:
		return "wojak"
	case StyleCartoon:
		return "cartoon"
	default:
		return "general"
	}
}

// Format is the output aspect of a generated image.
type Format int

const (
	// FormatSquare is the default format.
	FormatSquare Format = iota
	FormatHorizontal
	FormatVertical
)

// ParseFormat maps a request value to a Format, defaulting to [FormatSquare].
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal":
		return FormatHorizontal
	case "vertical":
		return FormatVertical
	default:
		return FormatSquare
	}
}

// String returns the canonical request value of the format.
func (f Format) String() string {
	switch f {
	case FormatHorizontal:
		return "horizontal"
	case FormatVertical:
		return "vertical"
	default:
		return "square"
	}
}

// Size returns the backend resolution for the format.
func (f Format) Size() string {
	switch f {
	case FormatHorizontal:
		return "1792x1024"
	case FormatVertical:
		return "1024x1792"
	default:
		return "1024x1024"
	}
}

// BrandColors holds the optional brand palette of a generation.
type BrandColors struct {
	Primary   string
	Secondary string
}

// IsZero reports whether no brand color was given.
func (b BrandColors) IsZero() bool {
	return b.Primary == "" && b.Secondary == ""
}

// PromptSpec is the ephemeral input of prompt synthesis. It is built per
// request and never persisted.
type PromptSpec struct {
	UserPrompt       string
	Style            Style
	Format           Format
	CharacterContext string
	AssetContexts    []string
	BrandColors      BrandColors
	LogoContext      string
}
