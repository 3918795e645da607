package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/core"
	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/data/pgxutil"
	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/domain/model"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrHandleExists is returned when a username or email is already taken.
	// Both columns collapse to one error so registration responses cannot be
	// used to probe which handle collided.
	ErrHandleExists = errors.New("username or email already exists")
)

// UserRepo provides database operations for user credentials.
type UserRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewUserRepo creates a new UserRepo with real time provider.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewUserRepoWithTimeProvider creates a new UserRepo with a custom time provider (useful for tests).
func NewUserRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *UserRepo {
	return &UserRepo{DB: db, timeProvider: tp}
}

// SQL query constants for static queries.
const (
	userGetByIDQuery = `
		SELECT id, username, email, password_hash, created_at
		FROM users
		WHERE id = $1`

	userGetByEmailQuery = `
		SELECT id, username, email, password_hash, created_at
		FROM users
		WHERE email = $1`

	userExistsQuery = `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`

	userInsertQuery = `
		INSERT INTO users (username, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, username, email, password_hash, created_at`
)

// Insert persists a new user. The users table carries unique indexes on both
// username and email; concurrent inserts of the same handle resolve at the
// storage layer and the loser surfaces ErrHandleExists.
func (r *UserRepo) Insert(ctx context.Context, params core.InsertUserParams) (*model.User, error) {
	createdAt := r.timeProvider.Now().UTC()

	var out model.User
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, userInsertQuery,
			strings.TrimSpace(params.Username),
			normalizeEmail(params.Email),
			params.PasswordHash,
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err)
	}
	return &out, nil
}

// FindByEmail retrieves a user by email.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getByQuery(ctx, userGetByEmailQuery, "failed to get user by email", normalizeEmail(email))
}

// FindByID retrieves a user by ID.
func (r *UserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	return r.getByQuery(ctx, userGetByIDQuery, "failed to get user by ID", id)
}

// PrincipalExists reports whether a user row exists for the given id.
// This is the read-only lookup the auth guard performs on every protected request.
func (r *UserRepo) PrincipalExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	if err := r.DB.QueryRowContext(ctx, userExistsQuery, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

// getByQuery executes a query expected to return a single user.
func (r *UserRepo) getByQuery(ctx context.Context, q, errMsg string, args ...any) (*model.User, error) {
	var user model.User
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		user, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	return &user, nil
}

func (r *UserRepo) mapWriteErr(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrHandleExists
	}
	return err
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
