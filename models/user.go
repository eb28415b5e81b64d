package models

import "time"

// User represents a registered account. Registered users authenticate with
// email and password and receive a larger daily generation quota than
// anonymous callers.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id" db:"user_id"`

	// Email is the unique login identifier.
	Email string `json:"email" db:"email"`

	// Username is the public display name shown next to community memes.
	Username string `json:"username" db:"username"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is never serialized.
	PasswordHash string `json:"-" db:"password_hash"`

	// DailyLimit is the number of generations the user may perform per
	// calendar day. Always >= the anonymous default limit.
	DailyLimit int `json:"daily_limit" db:"daily_limit"`

	// IsActive reports whether the account may authenticate.
	IsActive bool `json:"-" db:"is_active"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// RegisterRequest carries the fields accepted by the registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest carries the credentials accepted by the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned after successful registration or login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
