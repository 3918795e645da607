package httpx

import (
	"context"

	domainauth "github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/domain/auth"
)

// authKey is an unexported context key type to avoid collisions across packages.
// Centralized in this file so all handlers/middleware use the same key.
type authKey struct{}

// SetAuthInContext returns a child context that carries the authenticated
// principal. If ac is nil, the original ctx is returned unchanged.
func SetAuthInContext(ctx context.Context, ac *domainauth.AuthContext) context.Context {
	if ac == nil {
		return ctx
	}
	return context.WithValue(ctx, authKey{}, ac)
}

// GetAuthFromContext returns the authenticated principal from context and a
// boolean indicating presence.
func GetAuthFromContext(ctx context.Context) (*domainauth.AuthContext, bool) {
	if ac, ok := ctx.Value(authKey{}).(*domainauth.AuthContext); ok && ac != nil {
		return ac, true
	}
	return nil, false
}

// PrincipalID returns the authenticated principal's id, or "" when the
// request is unauthenticated.
func PrincipalID(ctx context.Context) string {
	if ac, ok := GetAuthFromContext(ctx); ok {
		return ac.PrincipalID
	}
	return ""
}
