package models

import "time"

// Character is a reusable mascot description a registered user can attach to
// generations to keep the drawn character consistent across memes.
type Character struct {
	ID                int64     `json:"id" db:"id"`
	UserID            int64     `json:"user_id" db:"user_id"`
	Name              string    `json:"name" db:"name"`
	Description       string    `json:"description" db:"description"`
	StylePrompt       string    `json:"style_prompt" db:"style_prompt"`
	ReferenceImageURL string    `json:"reference_image_url,omitempty" db:"reference_image_url"`
	IsActive          bool      `json:"is_active" db:"is_active"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

// Asset is a logo, coin or other branded element described in text so the
// image backend can draw it literally.
type Asset struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	ImageURL    string    `json:"image_url" db:"image_url"`
	AssetType   string    `json:"asset_type" db:"asset_type"`
	Description string    `json:"description" db:"description"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Context renders the asset as a single line for prompt synthesis.
func (a Asset) Context() string {
	if a.Description == "" {
		return a.Name
	}
	return a.Name + ": " + a.Description
}
