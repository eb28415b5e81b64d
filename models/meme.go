package models

import "time"

// Meme is the persisted artifact of a successful generation.
//
// Prompt keeps the caller's original text and EnhancedPrompt the exact text
// sent to the image backend, so the mapping between them stays auditable.
type Meme struct {
	ID             int64  `json:"id" db:"id"`
	UserID         *int64 `json:"user_id,omitempty" db:"user_id"`
	CharacterID    *int64 `json:"character_id,omitempty" db:"character_id"`
	Prompt         string `json:"prompt" db:"prompt"`
	EnhancedPrompt string `json:"enhanced_prompt" db:"enhanced_prompt"`

	// ImageURL is the durable blob URL or, when persistence degraded, the
	// backend's temporary URL.
	ImageURL string `json:"image_url" db:"image_url"`

	// SourceURL is the URL returned by the image backend.
	SourceURL string `json:"-" db:"source_url"`

	// Stored reports whether ImageURL points at durable blob storage.
	Stored bool `json:"stored" db:"stored"`

	IsPublic        bool      `json:"is_public" db:"is_public"`
	Format          string    `json:"format,omitempty" db:"format"`
	BrandColor1     string    `json:"brand_color_1,omitempty" db:"brand_color_1"`
	BrandColor2     string    `json:"brand_color_2,omitempty" db:"brand_color_2"`
	LogoDescription string    `json:"logo_description,omitempty" db:"logo_description"`
	Likes           int       `json:"likes" db:"likes"`
	Views           int       `json:"views" db:"views"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`

	// Username is filled for community listings only.
	Username string `json:"username,omitempty" db:"username"`
}

// TableName returns the name of the database table
// associated with the Meme model.
func (m Meme) TableName() string {
	return "memes"
}

// DashboardStats summarises a user's activity.
type DashboardStats struct {
	TotalMemes       int `json:"total_memes"`
	TotalLikes       int `json:"total_likes"`
	TotalViews       int `json:"total_views"`
	GenerationsToday int `json:"generations_today"`
	DailyLimit       int `json:"daily_limit"`
}

// Dashboard is the response of the dashboard endpoint.
type Dashboard struct {
	Memes []Meme         `json:"memes"`
	Stats DashboardStats `json:"stats"`
}

// VisibilityRequest toggles the public flag of a meme.
type VisibilityRequest struct {
	IsPublic bool `json:"is_public"`
}

// Page bounds a listing query.
type Page struct {
	Limit  uint64
	Offset uint64
}
