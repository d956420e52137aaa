package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *RedisCache {
	t.Helper()
	srv := miniredis.RunT(t)
	client := goredis.NewUniversalClient(&goredis.UniversalOptions{
		Addrs: []string{srv.Addr()},
	})
	t.Cleanup(func() { _ = client.Close() })
	return NewCacheWithClient(client)
}

func TestRedisCache_SetGetDelete(t *testing.T) {
	rc := newTestCache(t)
	ctx := context.Background()

	_, found, err := rc.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, rc.Set(ctx, "key", `{"ids":[1,2]}`, 0))

	val, found, err := rc.Get(ctx, "key")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"ids":[1,2]}`, val)

	require.NoError(t, rc.Delete(ctx, "key"))
	_, found, err = rc.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisCache_OverwriteReplacesValue(t *testing.T) {
	rc := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, rc.Set(ctx, "key", "old", 0))
	require.NoError(t, rc.Set(ctx, "key", "new", 0))

	val, found, err := rc.Get(ctx, "key")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "new", val)
}
