package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = 30 * time.Minute

// AuthConfig groups credential and token configuration. The token secret is
// the single process-wide signing key; every replica sharing it can verify
// every other replica's tokens.
type AuthConfig struct {
	// TokenSecret signs and verifies bearer tokens. Required; there is no
	// safe default for a signing key.
	TokenSecret string `env:"TOKEN_SECRET,required"`

	// TokenTTL is the lifetime of issued tokens.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"30m"`

	// BcryptCost is the bcrypt work factor for password hashing.
	BcryptCost int `env:"BCRYPT_COST" envDefault:"12"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.TokenTTL <= 0 {
		a.TokenTTL = defaultTokenTTL
	}
	if a.BcryptCost < bcrypt.MinCost {
		a.BcryptCost = bcrypt.DefaultCost
	}
	if a.BcryptCost > bcrypt.MaxCost {
		a.BcryptCost = bcrypt.MaxCost
	}
}
