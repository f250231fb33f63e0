// Package redis 提供 CacheService 接口的 Redis 实现
package redis

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"library_server/pkg/errorx"
)

// RedisCache Redis 缓存实现，同时实现 CacheService 和 AsyncCacheService
// 依赖方按需声明最小接口：SMS 只需要 CacheService，审计发布需要 SubmitTask
type RedisCache struct {
	client    *redis.Client
	taskChan  chan func()
	workerNum int
	wg        sync.WaitGroup
	closeOnce sync.Once
	onClose   func() // 嵌入式实例在这里关闭 miniredis
}

// NewRedisCache 创建 Redis 缓存实例并启动 Worker Pool
func NewRedisCache(client *redis.Client, workerNum, taskChanSize int) *RedisCache {
	rc := &RedisCache{
		client:    client,
		taskChan:  make(chan func(), taskChanSize),
		workerNum: workerNum,
	}
	startWorkers(rc.taskChan, workerNum, &rc.wg)
	zap.L().Info("Redis Cache Workers started", zap.Int("workers", workerNum), zap.Int("buffer", taskChanSize))
	return rc
}

// ==================== String 操作 ====================

func (r *RedisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errorx.Wrapf(err, errorx.CodeCacheError, "redis set key %s", key)
	}
	return nil
}

func (r *RedisCache) SetNX(ctx context.Context, key string, value string, ttl time.Duration) (bool, error) {
	ok, err := r.client.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		return false, errorx.Wrapf(err, errorx.CodeCacheError, "redis setnx key %s", key)
	}
	return ok, nil
}

func (r *RedisCache) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", errorx.Wrapf(err, errorx.CodeCacheError, "redis get key %s", key)
	}
	return value, nil
}

func (r *RedisCache) GetOrError(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", errorx.Wrapf(err, errorx.CodeNotFound, "redis key %s not found", key)
		}
		return "", errorx.Wrapf(err, errorx.CodeCacheError, "redis get key %s", key)
	}
	return value, nil
}

// Incr 计数加一，首次创建时设置过期时间
func (r *RedisCache) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	n, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, errorx.Wrapf(err, errorx.CodeCacheError, "redis incr key %s", key)
	}
	if n == 1 && ttl > 0 {
		if err := r.client.Expire(ctx, key, ttl).Err(); err != nil {
			return n, errorx.Wrapf(err, errorx.CodeCacheError, "redis expire key %s", key)
		}
	}
	return n, nil
}

// ==================== Key 操作 ====================

// Delete 使用 UNLINK 异步释放内存，键不存在不报错
func (r *RedisCache) Delete(ctx context.Context, key string) error {
	if err := r.client.Unlink(ctx, key).Err(); err != nil {
		return errorx.Wrapf(err, errorx.CodeCacheError, "redis unlink key %s", key)
	}
	return nil
}

func (r *RedisCache) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errorx.Wrap(err, errorx.CodeCacheError, "redis ping")
	}
	return nil
}

// ==================== 异步任务 ====================

// SubmitTask 提交异步任务
func (r *RedisCache) SubmitTask(action func()) {
	submit(r.taskChan, action)
}

// Close 停止 Worker 并关闭连接，已提交的任务会执行完
func (r *RedisCache) Close() error {
	var err error
	r.closeOnce.Do(func() {
		close(r.taskChan)
		r.wg.Wait()
		err = r.client.Close()
		if r.onClose != nil {
			r.onClose()
		}
	})
	return err
}

var _ AsyncCacheService = (*RedisCache)(nil)
