package idgen

import "github.com/google/uuid"

// Generator produces identifiers for new records and can be mocked for testing
type Generator interface {
	// NewID returns an identifier that has not been returned before
	NewID() string
}

// UUIDGenerator implements Generator with random (version 4) UUIDs
type UUIDGenerator struct{}

// New creates a new UUIDGenerator
func New() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a fresh UUID-v4 string
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
