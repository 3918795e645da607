package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainauth "github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/domain/auth"
)

// TokenCodec issues and verifies HMAC-signed bearer tokens. Verification is a
// pure function of (token, clock, secret): no external state is consulted, so
// any replica sharing the secret can verify any replica's tokens.
type TokenCodec struct {
	secret []byte
	clock  func() time.Time
}

// TokenCodecOptions groups construction parameters for TokenCodec.
type TokenCodecOptions struct {
	// Secret is the process-wide signing key, immutable after startup.
	Secret []byte
	// Clock overrides the time source; nil means time.Now. Used by tests.
	Clock func() time.Time
}

// NewTokenCodec constructs a TokenCodec. The secret is required.
func NewTokenCodec(opts TokenCodecOptions) (*TokenCodec, error) {
	if len(opts.Secret) == 0 {
		return nil, errors.New("token signing secret is required")
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	return &TokenCodec{
		secret: append([]byte(nil), opts.Secret...),
		clock:  clock,
	}, nil
}

// tokenClaims is the canonical wire shape. Extension fields live under a
// dedicated key so they can never shadow the registered claims.
type tokenClaims struct {
	Extra map[string]string `json:"ext,omitempty"`
	jwt.RegisteredClaims
}

// Issue builds claims for the subject with issued_at = now and
// expires_at = now + ttl, signs them with the process secret, and returns the
// encoded token plus its expiry. ttl must be positive.
func (c *TokenCodec) Issue(subject string, ttl time.Duration, extra map[string]string) (string, time.Time, error) {
	if ttl <= 0 {
		return "", time.Time{}, ErrInvalidTTL
	}
	if subject == "" {
		return "", time.Time{}, errors.New("token subject is required")
	}

	now := c.clock()
	expiresAt := now.Add(ttl)

	claims := tokenClaims{
		Extra: extra,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return token, expiresAt, nil
}

// Verify checks the token's signature, structure and expiry, returning the
// decoded claims only when all three pass. Failures map to exactly one of
// ErrTokenTampered, ErrTokenMalformed or ErrTokenExpired; an authentic token
// past its expiry reports ErrTokenExpired, never tampering.
func (c *TokenCodec) Verify(token string) (domainauth.Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.clock),
		jwt.WithExpirationRequired(),
	)

	var parsed tokenClaims
	_, err := parser.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		return domainauth.Claims{}, mapTokenError(err)
	}

	out := domainauth.Claims{
		Subject: parsed.Subject,
		Extra:   parsed.Extra,
	}
	if parsed.IssuedAt != nil {
		out.IssuedAt = parsed.IssuedAt.Time
	}
	if parsed.ExpiresAt != nil {
		out.ExpiresAt = parsed.ExpiresAt.Time
	}
	if out.Subject == "" {
		return domainauth.Claims{}, ErrTokenMalformed
	}
	return out, nil
}

// mapTokenError collapses jwt parser errors onto the codec's three kinds.
// Signature mismatch wins over everything else: a forged token must never
// surface as merely expired.
func mapTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %w", ErrTokenTampered, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrTokenExpired, err)
	default:
		return fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}
}
