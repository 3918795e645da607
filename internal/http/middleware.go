package httpx

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/auth"
)

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth returns a middleware that authenticates the bearer token in the
// Authorization header. On success the principal is placed in the request
// context; otherwise a 401 is written and the handler is never reached.
func RequireAuth(guard *auth.AuthGuard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ac, err := guard.Authenticate(r.Context(), r.Header.Get("Authorization"))
			if err != nil {
				writeAuthError(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(SetAuthInContext(r.Context(), ac)))
		})
	}
}

// writeAuthError maps guard failures onto 401 responses. Lookup failures
// (database down) are the only 500: the credential itself was fine.
func writeAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, auth.ErrMissingCredential):
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("missing or malformed authorization header"),
		})
	case errors.Is(err, auth.ErrUnauthorized):
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "invalid_token",
			Err:     errors.New("token is invalid or expired"),
		})
	case errors.Is(err, auth.ErrPrincipalNotFound):
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "unknown_principal",
			Err:     errors.New("token subject no longer exists"),
		})
	default:
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "auth_lookup_failed",
			Err:     errors.New("could not verify credentials"),
		})
	}
}
