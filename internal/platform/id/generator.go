package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Generator creates opaque identifiers, e.g. for correlating a request across logs.
type Generator interface {
	NewID() (string, error)
}

// RandomGenerator returns hex-encoded random IDs of a fixed byte length.
type RandomGenerator struct {
	size int
}

// NewRandomGenerator builds a generator of size random bytes; size <= 0 means 16.
func NewRandomGenerator(size int) *RandomGenerator {
	if size <= 0 {
		size = 16
	}
	return &RandomGenerator{size: size}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, g.size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
