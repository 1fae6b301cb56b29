package utils

import (
	"github.com/SscSPs/blog_api/internal/apperrors"
	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

// BcryptHasher hashes and verifies passwords with bcrypt.
type BcryptHasher struct {
	cost int
	// dummyHash is compared against when there is no stored hash, so that a
	// missing user costs the same bcrypt work as a present one.
	dummyHash []byte
}

// NewBcryptHasher creates a hasher. Costs outside bcrypt's range fall back to the default.
func NewBcryptHasher(cost int) (*BcryptHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	dummy, err := GenerateSecureRandomString(16)
	if err != nil {
		return nil, err
	}
	dummyHash, err := bcrypt.GenerateFromPassword([]byte(dummy), cost)
	if err != nil {
		return nil, err
	}
	return &BcryptHasher{cost: cost, dummyHash: dummyHash}, nil
}

// Hash hashes a plaintext password using bcrypt. Passwords longer than
// MaxPasswordBytes are rejected with a validation error.
func (h *BcryptHasher) Hash(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", apperrors.NewValidationError("Password must be at most 72 bytes")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(hash), err
}

// Compare compares a plaintext password with a bcrypt hash. An empty hash
// always fails after doing the same amount of work.
func (h *BcryptHasher) Compare(candidate, hash string) bool {
	if hash == "" {
		_ = bcrypt.CompareHashAndPassword(h.dummyHash, []byte(candidate))
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
}
