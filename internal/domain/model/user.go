package model

import (
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxUsernameLen = 50
	maxEmailLen    = 100

	// Bcrypt only consumes the first 72 bytes of input; longer passwords are
	// rejected up front rather than silently truncated.
	maxPasswordLen = 72
	minPasswordLen = 8
)

// User represents a registered account. PasswordHash is never serialized.
type User struct {
	ID           string    `json:"id"         db:"id"`
	Username     string    `json:"username"   db:"username"`
	Email        string    `json:"email"      db:"email"`
	PasswordHash string    `json:"-"          db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// RegisterRequest contains fields to create a new user account.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks registration input before any hashing work is done.
func (r *RegisterRequest) Validate() error {
	if err := validateUsername(r.Username); err != nil {
		return err
	}
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	return validatePassword(r.Password)
}

// LoginRequest contains credentials presented at login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks login input. It is deliberately lax compared to
// registration: any non-empty pair is worth a credential check.
func (r *LoginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("email is required")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
}

func validateUsername(username string) error {
	u := strings.TrimSpace(username)
	if u == "" {
		return errors.New("username is required and cannot be empty")
	}
	if utf8.RuneCountInString(u) > maxUsernameLen {
		return errors.New("username cannot exceed 50 characters")
	}
	return nil
}

func validateEmail(email string) error {
	e := strings.TrimSpace(email)
	if e == "" {
		return errors.New("email is required and cannot be empty")
	}
	if utf8.RuneCountInString(e) > maxEmailLen {
		return errors.New("email cannot exceed 100 characters")
	}
	if _, err := mail.ParseAddress(e); err != nil {
		return errors.New("email is not a valid address")
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return errors.New("password is required and cannot be empty")
	}
	if len(password) < minPasswordLen {
		return errors.New("password must be at least 8 characters")
	}
	if len(password) > maxPasswordLen {
		return errors.New("password cannot exceed 72 bytes")
	}
	return nil
}
