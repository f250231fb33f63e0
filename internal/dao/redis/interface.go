// Package redis 定义缓存服务接口
// Service 层依赖此接口而非具体 Redis 实现
// 缓存只保存短期凭据（验证码、Refresh Token ID），不缓存任何实体
package redis

import (
	"context"
	"time"
)

// CacheService 缓存服务接口
type CacheService interface {
	// Set 设置键值对并指定过期时间
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	// SetNX 键不存在时才写入，返回是否写入成功
	SetNX(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
	// Get 获取键对应的值（键不存在返回空字符串和 nil）
	Get(ctx context.Context, key string) (string, error)
	// GetOrError 获取键对应的值（键不存在返回 CodeNotFound）
	GetOrError(ctx context.Context, key string) (string, error)
	// Incr 计数加一并返回新值，键首次创建时设置 ttl
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
	// Delete 删除键（如果存在）
	Delete(ctx context.Context, key string) error
	// Ping 健康检查
	Ping(ctx context.Context) error
}

// AsyncCacheService 在 CacheService 基础上提供异步任务能力
// 提交的任务在 Worker Pool 中执行，通道满时降级为同步执行
type AsyncCacheService interface {
	CacheService
	SubmitTask(action func())
	Close() error
}
