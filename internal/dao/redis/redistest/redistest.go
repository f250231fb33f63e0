// Package redistest 测试用的 miniredis 缓存
package redistest

import (
	"testing"

	myredis "library_server/internal/dao/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// Open 每个测试一个独立的 miniredis，测试结束时关闭
// 返回的 Miniredis 可以用 FastForward 推进过期时间
func Open(t testing.TB) (*myredis.RedisCache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	cache := myredis.NewRedisCache(redis.NewClient(&redis.Options{Addr: srv.Addr()}), 2, 16)
	t.Cleanup(func() { _ = cache.Close() })
	return cache, srv
}
