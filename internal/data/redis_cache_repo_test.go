package data

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniredisRepo(t *testing.T) (*RedisCacheRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCacheRepo(client), mr
}

func TestRedisCacheRepoSetGet(t *testing.T) {
	ctx := context.Background()
	repo, _ := newMiniredisRepo(t)

	require.NoError(t, repo.Set(ctx, "greeting", []byte("hello"), time.Minute))

	value, err := repo.Get(ctx, "greeting")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), value)
}

func TestRedisCacheRepoGetMissingKey(t *testing.T) {
	ctx := context.Background()
	repo, _ := newMiniredisRepo(t)

	value, err := repo.Get(ctx, "never-set")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestRedisCacheRepoSetRespectsTTL(t *testing.T) {
	ctx := context.Background()
	repo, mr := newMiniredisRepo(t)

	require.NoError(t, repo.Set(ctx, "ephemeral", []byte("x"), time.Minute))

	mr.FastForward(2 * time.Minute)

	value, err := repo.Get(ctx, "ephemeral")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestRedisCacheRepoDelete(t *testing.T) {
	ctx := context.Background()
	repo, _ := newMiniredisRepo(t)

	require.NoError(t, repo.Set(ctx, "doomed", []byte("x"), 0))

	removed, err := repo.Delete(ctx, "doomed")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Delete(ctx, "doomed")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestRedisCacheRepoEmptyKey(t *testing.T) {
	ctx := context.Background()
	repo, _ := newMiniredisRepo(t)

	assert.Error(t, repo.Set(ctx, "", []byte("x"), 0))

	_, err := repo.Get(ctx, "")
	assert.Error(t, err)

	_, err = repo.Delete(ctx, "")
	assert.Error(t, err)
}

func TestRedisCacheRepoHealth(t *testing.T) {
	ctx := context.Background()
	repo, mr := newMiniredisRepo(t)

	require.NoError(t, repo.Health(ctx))

	mr.Close()
	assert.Error(t, repo.Health(ctx))
}
