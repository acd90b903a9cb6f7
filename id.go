package roadmap

import (
	"crypto/rand"
	"fmt"
	"io"
)

const (
	idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	idLength   = 9
)

// RandomID returns a 9 character base-36 token drawn from entropy.
// Uniqueness is probabilistic only.
func RandomID(entropy io.Reader) (string, error) {
	buf := make([]byte, idLength)
	if _, err := io.ReadFull(entropy, buf); err != nil {
		return "", fmt.Errorf("reading id entropy: %w", err)
	}
	for i, b := range buf {
		buf[i] = idAlphabet[int(b)%len(idAlphabet)]
	}
	return string(buf), nil
}

// IDSource hands out ids for items whose source row has none.
type IDSource interface {
	NewID() string
}

// IDGenerator is an IDSource backed by an entropy reader.
type IDGenerator struct {
	entropy io.Reader
}

// NewIDGenerator returns a generator reading from entropy, or from
// crypto/rand when entropy is nil.
func NewIDGenerator(entropy io.Reader) *IDGenerator {
	if entropy == nil {
		entropy = rand.Reader
	}
	return &IDGenerator{entropy: entropy}
}

// NewID returns a fresh id. If the configured source is exhausted it falls
// back to crypto/rand.
func (g *IDGenerator) NewID() string {
	id, err := RandomID(g.entropy)
	if err == nil {
		return id
	}
	id, err = RandomID(rand.Reader)
	if err != nil {
		panic(fmt.Sprintf("roadmap: crypto/rand unavailable: %v", err))
	}
	return id
}
