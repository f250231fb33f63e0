// Package redis 提供 Redis 缓存操作的封装
// 本文件仅包含连接初始化逻辑，底层客户端为 github.com/redis/go-redis/v9
package redis

import (
	"context"
	"strconv"
	"time"

	"library_server/internal/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// MemoryHost redisConfig.host 取该值时在进程内启动 miniredis
const MemoryHost = "memory"

// Init 根据配置创建缓存服务
// 连接失败只打 Warn，由调用方决定是否继续启动
func Init(cfg *config.RedisConfig) AsyncCacheService {
	if cfg.Host == MemoryHost {
		zap.L().Warn("cache uses embedded redis, tokens are not shared between instances")
		rc, err := NewEmbedded(cfg.Workers, cfg.Buffer)
		if err != nil {
			zap.L().Fatal("start embedded redis failed", zap.Error(err))
		}
		return rc
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Host + ":" + strconv.Itoa(cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.Db,
		PoolSize:     50,
		MinIdleConns: cfg.Workers,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		zap.L().Warn("redis ping failed", zap.Error(err))
	}

	return NewRedisCache(client, cfg.Workers, cfg.Buffer)
}
