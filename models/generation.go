package models

import "time"

// GenerationEvent records one successful generation. Events are append-only
// and are what the daily quota is counted from.
type GenerationEvent struct {
	ID        int64     `json:"id" db:"id"`
	UserID    *int64    `json:"user_id,omitempty" db:"user_id"`
	SessionID *string   `json:"session_id,omitempty" db:"session_id"`
	IPAddress *string   `json:"ip_address,omitempty" db:"ip_address"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NewGenerationEvent builds an event for the given identity at the given time.
func NewGenerationEvent(identity Identity, at time.Time) GenerationEvent {
	event := GenerationEvent{UserID: identity.UserID, CreatedAt: at}
	if !identity.IsRegistered {
		if identity.SessionID != "" {
			event.SessionID = &identity.SessionID
		}
		if identity.IPAddress != "" {
			event.IPAddress = &identity.IPAddress
		}
	}
	return event
}

// QuotaStatus reports an identity's standing within the current quota window.
type QuotaStatus struct {
	Limit        int       `json:"limit"`
	Used         int       `json:"used"`
	Remaining    int       `json:"remaining"`
	IsRegistered bool      `json:"is_registered"`
	ResetsAt     time.Time `json:"resets_at"`
}

// GenerateRequest is the input of the generation pipeline.
type GenerateRequest struct {
	Prompt          string  `json:"prompt"`
	Style           string  `json:"style,omitempty"`
	Format          string  `json:"format,omitempty"`
	CharacterID     *int64  `json:"character_id,omitempty"`
	AssetIDs        []int64 `json:"asset_ids,omitempty"`
	BrandColor1     string  `json:"brand_color_1,omitempty"`
	BrandColor2     string  `json:"brand_color_2,omitempty"`
	LogoDescription string  `json:"logo_description,omitempty"`

	Identity IdentityRequest `json:"-"`
}

// GenerateResult is returned by a successful generation.
type GenerateResult struct {
	MemeID              int64  `json:"meme_id"`
	ImageURL            string `json:"image_url"`
	RemainingQuota      int    `json:"remaining_quota"`
	PersistenceDegraded bool   `json:"persistence_degraded"`
	EnhancedPrompt      string `json:"-"`
}
