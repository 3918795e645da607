package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/auth"
	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/core"
	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/data"
	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/domain/event"
	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/domain/model"
	apperrors "github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/errors"
)

// DefaultTokenTTL is the token lifetime used when configuration does not
// override it.
const DefaultTokenTTL = 30 * time.Minute

// loginTokenType is the scheme clients must present the token under.
const loginTokenType = "bearer"

// UserServiceOptions groups dependencies for UserService.
type UserServiceOptions struct {
	Users    core.UserRepository
	Hasher   auth.PasswordHasher
	Tokens   *auth.TokenCodec
	Events   core.EventPublisher // Optional: nil disables event publishing
	TokenTTL time.Duration       // Optional: defaults to DefaultTokenTTL
	Logger   *slog.Logger        // Optional: structured logger
	Clock    func() time.Time    // Optional: time source, defaults to time.Now
}

// UserService owns registration, login and profile lookup. Credential
// failures at login collapse to a single error so responses cannot reveal
// whether the email or the password was wrong.
type UserService struct {
	users    core.UserRepository
	hasher   auth.PasswordHasher
	tokens   *auth.TokenCodec
	events   core.EventPublisher
	tokenTTL time.Duration
	logger   *slog.Logger
	clock    func() time.Time
}

// NewUserService constructs a new UserService.
func NewUserService(opts UserServiceOptions) *UserService {
	ttl := opts.TokenTTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	return &UserService{
		users:    opts.Users,
		hasher:   opts.Hasher,
		tokens:   opts.Tokens,
		events:   opts.Events,
		tokenTTL: ttl,
		logger:   logger,
		clock:    clock,
	}
}

// Register creates a new account. Uniqueness of username and email is
// enforced by the storage layer, not a read-then-write, so concurrent
// registrations of the same handle cannot both succeed.
func (s *UserService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidPassword) {
			return nil, apperrors.ValidationField("password", "Password is empty or too long")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "Failed to hash password")
	}

	user, err := s.users.Insert(ctx, core.InsertUserParams{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, data.ErrHandleExists) {
			return nil, apperrors.Conflict("Username or email already exists")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "Failed to create user")
	}

	s.publish(ctx, event.ChannelUserEvents, event.NewUserRegistered(user.ID, user.Email, s.clock()))
	return user, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password return the same error.
func (s *UserService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, data.ErrUserNotFound) {
			return nil, invalidCredentials()
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "Failed to look up user")
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, invalidCredentials()
	}

	token, expiresAt, err := s.tokens.Issue(user.ID, s.tokenTTL, nil)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "Failed to issue token")
	}

	return &model.LoginResponse{
		Token:     token,
		TokenType: loginTokenType,
		ExpiresAt: expiresAt,
	}, nil
}

// Me returns the profile of the authenticated principal.
func (s *UserService) Me(ctx context.Context, principalID string) (*model.User, error) {
	user, err := s.users.FindByID(ctx, principalID)
	if err != nil {
		if errors.Is(err, data.ErrUserNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "Failed to look up user")
	}
	return user, nil
}

// Logout is advisory. Tokens are stateless and remain cryptographically
// valid until expiry; the client is expected to discard its copy.
func (s *UserService) Logout(ctx context.Context) string {
	return "Successfully logged out"
}

// publish sends an event payload without failing the request that produced it.
func (s *UserService) publish(ctx context.Context, channel string, payload any) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, channel, payload); err != nil {
		s.logger.WarnContext(ctx, "failed to publish event",
			"channel", channel,
			"error", err)
	}
}

func invalidCredentials() *apperrors.AppError {
	return apperrors.Unauthorized("Invalid credentials")
}
