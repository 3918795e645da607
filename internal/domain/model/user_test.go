package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRegisterRequest() RegisterRequest {
	return RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct horse battery",
	}
}

func TestRegisterRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RegisterRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *RegisterRequest) {}, wantErr: false},
		{name: "empty username", mutate: func(r *RegisterRequest) { r.Username = "  " }, wantErr: true},
		{name: "username too long", mutate: func(r *RegisterRequest) { r.Username = strings.Repeat("a", 51) }, wantErr: true},
		{name: "username at limit", mutate: func(r *RegisterRequest) { r.Username = strings.Repeat("a", 50) }, wantErr: false},
		{name: "empty email", mutate: func(r *RegisterRequest) { r.Email = "" }, wantErr: true},
		{name: "email without at sign", mutate: func(r *RegisterRequest) { r.Email = "not-an-address" }, wantErr: true},
		{name: "email too long", mutate: func(r *RegisterRequest) { r.Email = strings.Repeat("a", 95) + "@x.com" }, wantErr: true},
		{name: "empty password", mutate: func(r *RegisterRequest) { r.Password = "" }, wantErr: true},
		{name: "short password", mutate: func(r *RegisterRequest) { r.Password = "seven77" }, wantErr: true},
		{name: "password at bcrypt limit", mutate: func(r *RegisterRequest) { r.Password = strings.Repeat("p", 72) }, wantErr: false},
		{name: "password over bcrypt limit", mutate: func(r *RegisterRequest) { r.Password = strings.Repeat("p", 73) }, wantErr: true},
		// len() counts bytes; 24 four-byte runes exceed 72 bytes.
		{name: "multibyte password over limit", mutate: func(r *RegisterRequest) { r.Password = strings.Repeat("\U0001F3B5", 24) + "x" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoginRequestValidate(t *testing.T) {
	assert.NoError(t, (&LoginRequest{Email: "alice@example.com", Password: "x"}).Validate())
	assert.Error(t, (&LoginRequest{Email: " ", Password: "x"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "alice@example.com", Password: ""}).Validate())
}
