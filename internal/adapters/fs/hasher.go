package fs

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/csspipe/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher derives cache keys from stylesheet text.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Hash returns the XXHash of css as 16 lowercase hex characters.
func (h *Hasher) Hash(css string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(css))
}
