package fs

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/recheck/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher fingerprints artifacts with XXHash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// HashString returns the XXHash of s as 16 hex digits.
// The empty string hashes to the empty fingerprint.
func (h *Hasher) HashString(s string) string {
	if s == "" {
		return ""
	}
	return fmt.Sprintf("%016x", xxhash.Sum64String(s))
}
