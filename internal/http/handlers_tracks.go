package httpx

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/domain/model"
	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/service"
)

const (
	defaultTrackPageSize = 50
	maxTrackPageSize     = 200

	// multipartMemoryLimit bounds the in-memory portion of an upload parse;
	// larger parts spill to temp files.
	multipartMemoryLimit = 8 << 20
)

// TrackHandlers provides HTTP handlers for catalog operations.
type TrackHandlers struct {
	Svc *service.TrackService
}

// List handles GET /songs.
func (h *TrackHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, defaultTrackPageSize, maxTrackPageSize)

	tracks, err := h.Svc.List(r.Context(), model.TrackListOptions{Limit: limit, Offset: offset})
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, tracks)
}

// Get handles GET /songs/{id}.
func (h *TrackHandlers) Get(w http.ResponseWriter, r *http.Request) {
	track, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, track)
}

// Create handles POST /songs. Uploads are multipart forms carrying the track
// metadata fields plus the raw audio under "audio_file".
func (h *TrackHandlers) Create(w http.ResponseWriter, r *http.Request) {
	req, err := parseTrackUpload(r)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_upload", Err: err})
		return
	}

	track, err := h.Svc.Create(r.Context(), req, PrincipalID(r.Context()))
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, track)
}

// Audio handles GET /songs/{id}/audio and streams the stored bytes.
func (h *TrackHandlers) Audio(w http.ResponseWriter, r *http.Request) {
	audio, err := h.Svc.GetAudio(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Content-Length", strconv.Itoa(len(audio)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(audio); err != nil {
		// Client gone mid-stream; nothing left to do.
		return
	}
}

// parseTrackUpload reads the multipart form into a CreateTrackRequest.
// Field-level validation happens in the service; this only covers shape.
func parseTrackUpload(r *http.Request) (*model.CreateTrackRequest, error) {
	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		return nil, errors.New("request must be a multipart form")
	}

	duration, err := strconv.Atoi(r.FormValue("duration"))
	if err != nil {
		return nil, errors.New("duration must be an integer number of seconds")
	}
	releaseYear, err := strconv.Atoi(r.FormValue("release_year"))
	if err != nil {
		return nil, errors.New("release_year must be an integer")
	}

	req := &model.CreateTrackRequest{
		Title:           r.FormValue("title"),
		Artist:          r.FormValue("artist"),
		Genre:           r.FormValue("genre"),
		DurationSeconds: duration,
		ReleaseYear:     releaseYear,
		Tags:            splitTags(r.FormValue("tags")),
	}
	if album := r.FormValue("album"); album != "" {
		req.Album = &album
	}

	file, _, err := r.FormFile("audio_file")
	if err != nil {
		return nil, errors.New("audio_file is required")
	}
	defer file.Close()

	// Read one byte past the cap so oversized uploads fail validation
	// instead of being silently truncated.
	audio, err := io.ReadAll(io.LimitReader(file, model.MaxAudioBytes+1))
	if err != nil {
		return nil, errors.New("could not read audio_file")
	}
	req.Audio = audio

	return req, nil
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
