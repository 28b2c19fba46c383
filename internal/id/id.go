package id

import (
	"crypto/rand"
	"fmt"

	"github.com/google/uuid"
)

// Generator produces unique question identifiers. It is injected into the
// pipeline so tests can use a deterministic source instead of crypto/rand.
type Generator interface {
	NewID() string
}

// Random generates 16-character alphanumeric IDs from crypto/rand.
type Random struct{}

func (Random) NewID() string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	for i := range b {
		b[i] = chars[b[i]%byte(len(chars))]
	}
	return string(b)
}

// UUID generates RFC 4122 version-4 identifiers.
type UUID struct{}

func (UUID) NewID() string {
	return uuid.NewString()
}

// Sequential generates "q-1", "q-2", ... for deterministic tests.
// Not safe for concurrent use.
type Sequential struct {
	n int
}

func (s *Sequential) NewID() string {
	s.n++
	return fmt.Sprintf("q-%d", s.n)
}
