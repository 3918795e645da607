package httpx

import (
	"log/slog"
	"net/http"

	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/auth"
	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/core"
	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/service"
)

// RouterServices holds everything the per-service routers can need. Each
// service binary populates only the fields its router uses.
type RouterServices struct {
	Users     *service.UserService
	Tracks    *service.TrackService
	Playbacks *service.PlaybackService
	Cache     core.CacheRepository
	Guard     *auth.AuthGuard
	Logger    *slog.Logger // Logger for request logging (optional)
}

// NewUserRouter builds the user service routes: registration, login and
// token-protected profile endpoints.
func NewUserRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()
	handlers := &UserHandlers{Svc: services.Users}
	requireAuth := RequireAuth(services.Guard)

	mux.Handle("POST /register", http.HandlerFunc(handlers.Register))
	mux.Handle("POST /login", http.HandlerFunc(handlers.Login))
	mux.Handle("GET /me", requireAuth(http.HandlerFunc(handlers.Me)))
	mux.Handle("POST /logout", requireAuth(http.HandlerFunc(handlers.Logout)))
	registerHealthRoutes(mux)

	return wrapCommon(mux, services.Logger)
}

// NewCatalogRouter builds the catalog service routes: track listing, upload,
// audio streaming and the scratch cache.
func NewCatalogRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()
	tracks := &TrackHandlers{Svc: services.Tracks}
	requireAuth := RequireAuth(services.Guard)

	mux.Handle("GET /songs", http.HandlerFunc(tracks.List))
	mux.Handle("POST /songs", requireAuth(http.HandlerFunc(tracks.Create)))
	mux.Handle("GET /songs/{id}", http.HandlerFunc(tracks.Get))
	mux.Handle("GET /songs/{id}/audio", http.HandlerFunc(tracks.Audio))

	if services.Cache != nil {
		cache := &CacheHandlers{Cache: services.Cache}
		mux.Handle("GET /cache/{key}", http.HandlerFunc(cache.Get))
		mux.Handle("POST /cache/{key}", http.HandlerFunc(cache.Set))
	}
	registerHealthRoutes(mux)

	return wrapCommon(mux, services.Logger)
}

// NewPlaybackRouter builds the playback service routes: logging actions and
// reading history. Both require a bearer token.
func NewPlaybackRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()
	handlers := &PlaybackHandlers{Svc: services.Playbacks}
	requireAuth := RequireAuth(services.Guard)

	mux.Handle("POST /play", requireAuth(http.HandlerFunc(handlers.Play)))
	mux.Handle("GET /history/{user_id}", requireAuth(http.HandlerFunc(handlers.History)))
	registerHealthRoutes(mux)

	return wrapCommon(mux, services.Logger)
}

func registerHealthRoutes(mux *http.ServeMux) {
	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))
}

// wrapCommon applies the middleware shared by every service router.
func wrapCommon(mux *http.ServeMux, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	var handler http.Handler = mux
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler
}
