package redisstore_test

import (
	"context"
	"testing"
	"time"

	redisstore "quotation-service/internal/infrastructure/redis"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	return mr, redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestTryReserve(t *testing.T) {
	mr, client := newClient(t)
	store := redisstore.New(client, time.Hour)

	ctx := context.Background()
	ok, err := store.TryReserve(ctx, "k1")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = store.TryReserve(ctx, "k1")
	require.NoError(t, err)
	require.False(t, ok)

	mr.FastForward(2 * time.Hour)
	ok, err = store.TryReserve(ctx, "k1")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestRelease(t *testing.T) {
	_, client := newClient(t)
	store := redisstore.New(client, time.Hour)
	ctx := context.Background()

	ok, err := store.TryReserve(ctx, "k2")
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, store.Release(ctx, "k2"))

	ok, err = store.TryReserve(ctx, "k2")
	require.NoError(t, err)
	require.True(t, ok)
}
