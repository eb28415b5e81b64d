package utils

import (
	"github.com/google/uuid"
	"github.com/segmentio/ksuid"
)

type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// NewSessionID returns a sortable, globally unique identifier for an
// anonymous caller session.
func NewSessionID() string {
	return ksuid.New().String()
}
