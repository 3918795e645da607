package httpx

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCatalogRouter_CacheGet(t *testing.T) {
	env := newTestEnv(t)

	t.Run("hit", func(t *testing.T) {
		env.cacheRepo.EXPECT().
			Get(gomock.Any(), "greeting").
			Return([]byte("hello"), nil)

		rec := doRequest(env.catalog, httptest.NewRequest(http.MethodGet, "/cache/greeting", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"key":"greeting","value":"hello"}`, rec.Body.String())
	})

	t.Run("miss", func(t *testing.T) {
		env.cacheRepo.EXPECT().
			Get(gomock.Any(), "missing").
			Return(nil, nil)

		rec := doRequest(env.catalog, httptest.NewRequest(http.MethodGet, "/cache/missing", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("backend failure", func(t *testing.T) {
		env.cacheRepo.EXPECT().
			Get(gomock.Any(), "broken").
			Return(nil, errors.New("redis down"))

		rec := doRequest(env.catalog, httptest.NewRequest(http.MethodGet, "/cache/broken", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "cache_failed")
	})
}

func TestCatalogRouter_CacheSet(t *testing.T) {
	env := newTestEnv(t)

	t.Run("stores with default ttl", func(t *testing.T) {
		env.cacheRepo.EXPECT().
			Set(gomock.Any(), "greeting", []byte("hello"), cacheDefaultTTL).
			Return(nil)

		rec := doRequest(env.catalog,
			httptest.NewRequest(http.MethodPost, "/cache/greeting", strings.NewReader("hello")))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"key":"greeting","status":"cached"}`, rec.Body.String())
	})

	t.Run("empty value", func(t *testing.T) {
		rec := doRequest(env.catalog,
			httptest.NewRequest(http.MethodPost, "/cache/greeting", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("oversized value", func(t *testing.T) {
		big := bytes.Repeat([]byte("x"), maxCacheValueBytes+1)
		rec := doRequest(env.catalog,
			httptest.NewRequest(http.MethodPost, "/cache/big", bytes.NewReader(big)))
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("backend failure", func(t *testing.T) {
		env.cacheRepo.EXPECT().
			Set(gomock.Any(), "broken", []byte("v"), cacheDefaultTTL).
			Return(errors.New("redis down"))

		rec := doRequest(env.catalog,
			httptest.NewRequest(http.MethodPost, "/cache/broken", strings.NewReader("v")))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
