package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

// Generator creates opaque public ids for stored records.
type Generator interface {
	NewID() (string, error)
}

// RandomGenerator returns "{prefix}_{hex}" ids, or bare hex when prefix is empty.
type RandomGenerator struct {
	prefix string
	size   int
	source io.Reader
}

func NewRandomGenerator(prefix string) *RandomGenerator {
	return &RandomGenerator{prefix: prefix, size: 12, source: rand.Reader}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, g.size)
	if _, err := io.ReadFull(g.source, buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	value := hex.EncodeToString(buf)
	if g.prefix == "" {
		return value, nil
	}
	return g.prefix + "_" + value, nil
}
