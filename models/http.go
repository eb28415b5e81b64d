package models

// CreateCharacterRequest is the body of the character creation endpoint.
type CreateCharacterRequest struct {
	Name              string `json:"name"`
	Description       string `json:"description"`
	StylePrompt       string `json:"style_prompt"`
	ReferenceImageURL string `json:"reference_image_url,omitempty"`
}

// CreateAssetRequest is the body of the asset creation endpoint.
type CreateAssetRequest struct {
	Name        string `json:"name"`
	ImageURL    string `json:"image_url"`
	AssetType   string `json:"asset_type"`
	Description string `json:"description,omitempty"`
}

// SessionResponse carries a freshly issued anonymous session identifier.
type SessionResponse struct {
	SessionID string `json:"session_id"`
}
