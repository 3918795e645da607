package httpx

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/auth"
	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/mocks"
	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/service"
)

var routerTestTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// testEnv wires real services and a real auth guard over gomock repositories
// so handler tests exercise the same request path production uses.
type testEnv struct {
	userRepo     *mocks.MockUserRepository
	trackRepo    *mocks.MockTrackRepository
	playbackRepo *mocks.MockPlaybackRepository
	cacheRepo    *mocks.MockCacheRepository

	codec  *auth.TokenCodec
	hasher *auth.BcryptHasher

	users     http.Handler
	catalog   http.Handler
	playbacks http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	env := &testEnv{
		userRepo:     mocks.NewMockUserRepository(ctrl),
		trackRepo:    mocks.NewMockTrackRepository(ctrl),
		playbackRepo: mocks.NewMockPlaybackRepository(ctrl),
		cacheRepo:    mocks.NewMockCacheRepository(ctrl),
	}

	codec, err := auth.NewTokenCodec(auth.TokenCodecOptions{
		Secret: []byte("router-test-secret"),
		Clock:  func() time.Time { return routerTestTime },
	})
	require.NoError(t, err)
	env.codec = codec
	env.hasher = auth.NewBcryptHasher(bcrypt.MinCost)

	guard, err := auth.NewAuthGuard(auth.AuthGuardOptions{
		Codec:      codec,
		Principals: env.userRepo,
	})
	require.NoError(t, err)

	clock := func() time.Time { return routerTestTime }
	logger := slog.Default()

	services := RouterServices{
		Users: service.NewUserService(service.UserServiceOptions{
			Users:  env.userRepo,
			Hasher: env.hasher,
			Tokens: codec,
			Logger: logger,
			Clock:  clock,
		}),
		Tracks: service.NewTrackService(service.TrackServiceOptions{
			Tracks: env.trackRepo,
			Logger: logger,
			Clock:  clock,
		}),
		Playbacks: service.NewPlaybackService(service.PlaybackServiceOptions{
			Playbacks: env.playbackRepo,
			Logger:    logger,
			Clock:     clock,
		}),
		Cache:  env.cacheRepo,
		Guard:  guard,
		Logger: logger,
	}

	env.users = NewUserRouter(services)
	env.catalog = NewCatalogRouter(services)
	env.playbacks = NewPlaybackRouter(services)
	return env
}

// bearerFor issues a valid token for the given subject.
func (e *testEnv) bearerFor(t *testing.T, userID string) string {
	t.Helper()
	token, _, err := e.codec.Issue(userID, time.Hour, nil)
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRoutersServeHealth(t *testing.T) {
	env := newTestEnv(t)

	for name, router := range map[string]http.Handler{
		"user":     env.users,
		"catalog":  env.catalog,
		"playback": env.playbacks,
	} {
		t.Run(name, func(t *testing.T) {
			rec := doRequest(router, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
		})
	}
}

func TestCatalogRouterOmitsCacheWithoutRepo(t *testing.T) {
	env := newTestEnv(t)

	guard, err := auth.NewAuthGuard(auth.AuthGuardOptions{
		Codec:      env.codec,
		Principals: env.userRepo,
	})
	require.NoError(t, err)

	router := NewCatalogRouter(RouterServices{
		Tracks: service.NewTrackService(service.TrackServiceOptions{Tracks: env.trackRepo}),
		Guard:  guard,
	})

	rec := doRequest(router, httptest.NewRequest(http.MethodGet, "/cache/some-key", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
