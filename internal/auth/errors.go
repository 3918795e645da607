package auth

import "errors"

// Sentinel errors for the authentication core. Hashing and token operations
// surface the precise kind to their direct caller; the guard and the user
// service flatten them into the coarser user-facing categories so responses
// never reveal which check failed.
var (
	// ErrInvalidPassword is returned when hashing input is empty or oversized.
	ErrInvalidPassword = errors.New("password is empty or too long")

	// ErrInvalidTTL is returned when a token is requested with a non-positive lifetime.
	ErrInvalidTTL = errors.New("token ttl must be positive")

	// ErrTokenMalformed is returned when a token cannot be decoded at all.
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrTokenTampered is returned when a token's signature does not match its payload.
	ErrTokenTampered = errors.New("token signature mismatch")

	// ErrTokenExpired is returned when an authentic token is past its expiry.
	ErrTokenExpired = errors.New("token has expired")

	// ErrMissingCredential is returned when no bearer credential is presented.
	ErrMissingCredential = errors.New("missing or malformed authorization header")

	// ErrUnauthorized wraps any token verification failure at the guard boundary.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrPrincipalNotFound is returned when a valid token names a principal
	// that no longer exists (e.g. the account was deleted after issuance).
	ErrPrincipalNotFound = errors.New("principal not found")
)
