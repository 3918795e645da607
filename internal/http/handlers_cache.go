package httpx

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/core"
)

const (
	// cacheDefaultTTL matches the catalog's scratch-cache behavior: entries
	// expire unless refreshed.
	cacheDefaultTTL = time.Hour

	// maxCacheValueBytes caps an individual cache value.
	maxCacheValueBytes = 1 << 20
)

// CacheHandlers exposes the ad-hoc key-value cache over HTTP.
type CacheHandlers struct {
	Cache core.CacheRepository
}

// Get handles GET /cache/{key}.
func (h *CacheHandlers) Get(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	value, err := h.Cache.Get(r.Context(), key)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "cache_failed", Err: err})
		return
	}
	if value == nil {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: errors.New("key not found")})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"key": key, "value": string(value)})
}

// Set handles POST /cache/{key}. The raw request body is the value.
func (h *CacheHandlers) Set(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	value, err := io.ReadAll(io.LimitReader(r.Body, maxCacheValueBytes+1))
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_body", Err: err})
		return
	}
	if len(value) == 0 {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_body", Err: errors.New("value is required")})
		return
	}
	if len(value) > maxCacheValueBytes {
		WriteError(w, ErrorParams{
			Code:    http.StatusRequestEntityTooLarge,
			ErrCode: "value_too_large",
			Err:     errors.New("value exceeds the maximum allowed size"),
		})
		return
	}

	if err := h.Cache.Set(r.Context(), key, value, cacheDefaultTTL); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "cache_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"key": key, "status": "cached"})
}
