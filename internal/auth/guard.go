package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainauth "github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/domain/auth"
)

// bearerScheme is the only recognized Authorization scheme.
const bearerScheme = "Bearer"

// PrincipalStore is the read-only lookup the guard uses to confirm a token's
// subject still exists. Implementations live in internal/data.
type PrincipalStore interface {
	PrincipalExists(ctx context.Context, principalID string) (bool, error)
}

// AuthGuard resolves an inbound Authorization header into a trusted
// AuthContext. It holds no per-request state and is safe for concurrent use.
type AuthGuard struct {
	codec      *TokenCodec
	principals PrincipalStore
}

// AuthGuardOptions groups dependencies for AuthGuard.
type AuthGuardOptions struct {
	Codec      *TokenCodec
	Principals PrincipalStore
}

// NewAuthGuard constructs an AuthGuard. Both dependencies are required.
func NewAuthGuard(opts AuthGuardOptions) (*AuthGuard, error) {
	if opts.Codec == nil {
		return nil, errors.New("token codec is required")
	}
	if opts.Principals == nil {
		return nil, errors.New("principal store is required")
	}
	return &AuthGuard{codec: opts.Codec, principals: opts.Principals}, nil
}

// Authenticate extracts the bearer token from the Authorization header value,
// verifies it, and resolves the subject against the principal store.
//
// Failure modes, in order: ErrMissingCredential when the header is absent or
// not a bearer credential; ErrUnauthorized (wrapping the precise token error
// kind) when verification fails; ErrPrincipalNotFound when the token is valid
// but its subject is gone. There is no retry within a request and the lookup
// is the only side effect.
func (g *AuthGuard) Authenticate(ctx context.Context, authorization string) (*domainauth.AuthContext, error) {
	token, ok := extractBearerToken(authorization)
	if !ok {
		return nil, ErrMissingCredential
	}

	claims, err := g.codec.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	exists, err := g.principals.PrincipalExists(ctx, claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("lookup principal %q: %w", claims.Subject, err)
	}
	if !exists {
		return nil, ErrPrincipalNotFound
	}

	return &domainauth.AuthContext{
		PrincipalID: claims.Subject,
		Claims:      claims,
	}, nil
}

// extractBearerToken splits "<scheme> <token>" and returns the token when the
// scheme is Bearer (case-insensitive, per RFC 6750) and the token is non-empty.
func extractBearerToken(authorization string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorization), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}
