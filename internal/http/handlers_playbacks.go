package httpx

import (
	"errors"
	"net/http"

	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/domain/model"
	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/service"
)

const (
	defaultHistoryPageSize = 100
	maxHistoryPageSize     = 500
)

// PlaybackHandlers provides HTTP handlers for the playback log.
type PlaybackHandlers struct {
	Svc *service.PlaybackService
}

// Play handles POST /play. The user id comes from the verified token, never
// from the request body.
func (h *PlaybackHandlers) Play(w http.ResponseWriter, r *http.Request) {
	var req model.LogPlaybackRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	req.UserID = PrincipalID(r.Context())
	if req.UserID == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}

	entry, err := h.Svc.LogPlayback(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, entry)
}

// History handles GET /history/{user_id}.
func (h *PlaybackHandlers) History(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")
	if userID == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("user_id is required"),
		})
		return
	}

	limit, offset := ParseLimitOffset(r, defaultHistoryPageSize, maxHistoryPageSize)
	entries, err := h.Svc.History(r.Context(), model.PlaybackHistoryOptions{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, entries)
}
