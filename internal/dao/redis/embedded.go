package redis

import (
	"fmt"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// NewEmbedded 在进程内启动 miniredis 并返回连到它的 RedisCache
// 只用于单机开发（redisConfig.host = "memory"），数据不跨进程共享，重启即丢失
func NewEmbedded(workerNum, taskChanSize int) (*RedisCache, error) {
	srv, err := miniredis.Run()
	if err != nil {
		return nil, fmt.Errorf("start embedded redis: %w", err)
	}
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	rc := NewRedisCache(client, workerNum, taskChanSize)
	rc.onClose = srv.Close
	return rc, nil
}
