package bootstrap

import (
	"fmt"

	"github.com/danielwinstonmandela/ScalableArchitecturesCS/config"
	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/auth"
)

// AuthComponents groups the credential primitives built from configuration.
// All three are stateless and shared across every service in the process.
type AuthComponents struct {
	Hasher *auth.BcryptHasher
	Tokens *auth.TokenCodec
	Guard  *auth.AuthGuard
}

// BuildAuth constructs the password hasher, token codec and auth guard from
// configuration. The principal store is the user repository; in processes
// that do not run the user service it still points at the shared users table.
func BuildAuth(cfg config.AuthConfig, principals auth.PrincipalStore) (*AuthComponents, error) {
	codec, err := auth.NewTokenCodec(auth.TokenCodecOptions{
		Secret: []byte(cfg.TokenSecret),
	})
	if err != nil {
		return nil, fmt.Errorf("build token codec: %w", err)
	}

	guard, err := auth.NewAuthGuard(auth.AuthGuardOptions{
		Codec:      codec,
		Principals: principals,
	})
	if err != nil {
		return nil, fmt.Errorf("build auth guard: %w", err)
	}

	return &AuthComponents{
		Hasher: auth.NewBcryptHasher(cfg.BcryptCost),
		Tokens: codec,
		Guard:  guard,
	}, nil
}
