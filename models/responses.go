package models

// ErrorResponse is the JSON body of a typed generation rejection.
type ErrorResponse struct {
	// Error is the machine-readable rejection kind:
	// unauthenticated, quota_exceeded, invalid_input or backend_error.
	Error string `json:"error"`

	// Message is a human-readable description.
	Message string `json:"message"`

	// Limit and Remaining are filled for quota_exceeded rejections.
	Limit     *int `json:"limit,omitempty"`
	Remaining *int `json:"remaining,omitempty"`
}
