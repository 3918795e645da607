// Package httpx provides HTTP handlers and routing for the music stream services.
package httpx

import (
	"errors"
	"net/http"

	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/domain/model"
	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/service"
)

// UserHandlers provides HTTP handlers for registration, login and profile.
type UserHandlers struct {
	Svc *service.UserService
}

// Register handles POST /register.
func (h *UserHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	user, err := h.Svc.Register(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, user)
}

// Login handles POST /login.
func (h *UserHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.Svc.Login(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}

// Me handles GET /me. The route is wrapped in RequireAuth, so a missing
// principal here means a routing bug rather than a client error.
func (h *UserHandlers) Me(w http.ResponseWriter, r *http.Request) {
	principalID := PrincipalID(r.Context())
	if principalID == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}

	user, err := h.Svc.Me(r.Context(), principalID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, user)
}

// Logout handles POST /logout. Tokens are stateless; the response tells the
// client to discard its copy.
func (h *UserHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"message": h.Svc.Logout(r.Context())})
}
