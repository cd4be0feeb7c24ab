// Package utils provides general-purpose helpers shared across the
// application.
package utils

import "github.com/google/uuid"

// IDGenerator produces unique note identifiers.
type IDGenerator interface {
	Generate() string
}

// UUIDGenerator generates time-ordered UUIDv7 identifiers, falling back to a
// random UUIDv4 when the v7 source fails.
type UUIDGenerator struct {
}

// NewUUIDGenerator returns a ready-to-use [UUIDGenerator].
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUID string.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
