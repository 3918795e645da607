package auth

// Package auth contains domain-level types for authentication.
// It is pure and free of framework/adapter concerns.

import "time"

// Claims is the structured payload embedded in a bearer token.
// Subject, IssuedAt and ExpiresAt are reserved; Extra carries optional
// extension fields that survive the encode/decode round trip.
type Claims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	Extra     map[string]string
}

// Expired reports whether the claims validity window has passed at the given time.
func (c Claims) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// AuthContext is the per-request resolved identity handed to protected
// handlers. It lives exactly as long as one request and is never persisted.
type AuthContext struct {
	PrincipalID string
	Claims      Claims
}
