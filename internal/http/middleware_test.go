package httpx

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/auth"
	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRecoverMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	Recover(discardLogger())(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLoggingMiddlewarePreservesStatus(t *testing.T) {
	teapot := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	Logging(discardLogger())(teapot).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestRequireAuth(t *testing.T) {
	newGuardEnv := func(t *testing.T) (*mocks.MockUserRepository, func(http.Handler) http.Handler, *auth.TokenCodec) {
		t.Helper()
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		store := mocks.NewMockUserRepository(ctrl)

		codec, err := auth.NewTokenCodec(auth.TokenCodecOptions{Secret: []byte("middleware-test-secret")})
		require.NoError(t, err)
		guard, err := auth.NewAuthGuard(auth.AuthGuardOptions{Codec: codec, Principals: store})
		require.NoError(t, err)
		return store, RequireAuth(guard), codec
	}

	protected := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{"principal": PrincipalID(r.Context())})
	})

	t.Run("valid token reaches handler with principal", func(t *testing.T) {
		store, requireAuth, codec := newGuardEnv(t)
		store.EXPECT().PrincipalExists(gomock.Any(), "user-1").Return(true, nil)

		token, _, err := codec.Issue("user-1", time.Hour, nil)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		requireAuth(protected).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"principal":"user-1"}`, rec.Body.String())
	})

	t.Run("missing header", func(t *testing.T) {
		_, requireAuth, _ := newGuardEnv(t)

		rec := httptest.NewRecorder()
		requireAuth(protected).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "authentication_required")
	})

	t.Run("garbage token", func(t *testing.T) {
		_, requireAuth, _ := newGuardEnv(t)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()
		requireAuth(protected).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid_token")
	})
}
