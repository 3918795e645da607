// Package auth implements the credential and bearer-token core shared by the
// services: one-way password hashing, signed token issuance/verification, and
// request authentication against a principal store.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes is bcrypt's input bound; longer input is rejected rather
// than silently truncated.
const maxPasswordBytes = 72

// PasswordHasher hashes plaintext secrets into self-describing encoded
// strings and verifies plaintext against them.
type PasswordHasher interface {
	// Hash returns an encoded hash embedding algorithm id, cost and salt.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches the encoded hash. It returns
	// false for any mismatch, malformed encoding, or unsupported algorithm,
	// never an error, so callers cannot distinguish which check failed.
	Verify(plaintext, encoded string) bool
}

// BcryptHasher implements PasswordHasher using bcrypt. The bcrypt encoding
// carries its own cost factor and salt, so the cost can be raised per process
// without invalidating previously stored hashes.
type BcryptHasher struct {
	cost int
}

// DefaultBcryptCost is used when no cost is configured.
const DefaultBcryptCost = 12

// NewBcryptHasher creates a bcrypt-based hasher. A cost outside bcrypt's
// valid range falls back to DefaultBcryptCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash generates a fresh random salt and returns the bcrypt encoding of the
// plaintext. It fails only for empty or oversized input.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	if plaintext == "" || len(plaintext) > maxPasswordBytes {
		return "", ErrInvalidPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}
	return string(hash), nil
}

// Verify re-derives the digest using the parameters embedded in the encoding
// and compares in constant time.
func (h *BcryptHasher) Verify(plaintext, encoded string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(plaintext)) == nil
}
