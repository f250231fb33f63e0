package redis

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"library_server/pkg/errorx"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, workers int) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	return NewRedisCache(redis.NewClient(&redis.Options{Addr: srv.Addr()}), workers, 8), srv
}

func TestRedisCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, srv := newTestCache(t, 1)
	defer c.Close()

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))
	v, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	srv.FastForward(time.Minute)
	v, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Empty(t, v)

	_, err = c.GetOrError(ctx, "k")
	assert.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))
}

func TestRedisCacheSetNXAndDelete(t *testing.T) {
	ctx := context.Background()
	c, srv := newTestCache(t, 1)
	defer c.Close()

	ok, err := c.SetNX(ctx, "code", "1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, time.Minute, srv.TTL("code"))

	ok, err = c.SetNX(ctx, "code", "2", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Delete(ctx, "code"))
	assert.False(t, srv.Exists("code"))
	// 删除不存在的键不报错
	require.NoError(t, c.Delete(ctx, "code"))

	ok, _ = c.SetNX(ctx, "code", "3", time.Minute)
	assert.True(t, ok)
}

func TestRedisCacheIncr(t *testing.T) {
	ctx := context.Background()
	c, srv := newTestCache(t, 1)
	defer c.Close()

	n, err := c.Incr(ctx, "attempts", time.Minute)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	n, err = c.Incr(ctx, "attempts", time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
	// 只在第一次设置过期时间
	assert.Equal(t, time.Minute, srv.TTL("attempts"))

	srv.FastForward(time.Minute)
	n, _ = c.Incr(ctx, "attempts", time.Minute)
	assert.EqualValues(t, 1, n)
}

func TestRedisCacheErrorsAreCacheErrors(t *testing.T) {
	ctx := context.Background()
	c, srv := newTestCache(t, 1)
	defer c.Close()

	require.NoError(t, c.Set(ctx, "k", "v", 0))
	srv.SetError("ERR server unavailable")
	_, err := c.Get(ctx, "k")
	assert.Equal(t, errorx.CodeCacheError, errorx.GetCode(err))
	assert.Equal(t, errorx.CodeCacheError, errorx.GetCode(c.Ping(ctx)))
}

func TestRedisCacheSubmitTaskDrainsOnClose(t *testing.T) {
	c, _ := newTestCache(t, 2)
	var n int32
	for i := 0; i < 20; i++ {
		c.SubmitTask(func() { atomic.AddInt32(&n, 1) })
	}
	c.SubmitTask(func() { panic("ignored") })
	require.NoError(t, c.Close())
	assert.EqualValues(t, 20, atomic.LoadInt32(&n))
	// 重复 Close 安全
	require.NoError(t, c.Close())
}

func TestEmbeddedCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewEmbedded(1, 4)
	require.NoError(t, err)
	require.NoError(t, c.Ping(ctx))
	require.NoError(t, c.Set(ctx, "k", "v", 0))
	v, _ := c.Get(ctx, "k")
	assert.Equal(t, "v", v)
	require.NoError(t, c.Close())
}
