package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordTooLong is returned by HashPassword for passwords bcrypt cannot
// hash without truncation.
var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

// HashPassword computes a salted bcrypt hash of plaintext with the given cost.
// A cost outside bcrypt's accepted range falls back to [bcrypt.DefaultCost].
//
// At cost 10 a hash takes tens of milliseconds, which is the intended price
// of a login attempt.
//
// Example usage:
//
//	hash, err := utils.HashPassword("correct horse", 10)
func HashPassword(plaintext string, cost int) (string, error) {
	if len(plaintext) > 72 {
		return "", ErrPasswordTooLong
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches hash. The comparison is
// delegated to bcrypt, which compares in constant time.
func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
