package service

import (
	"context"

	"library_server/internal/dao/db"
	"library_server/internal/dao/db/repository"
	myredis "library_server/internal/dao/redis"
	"library_server/pkg/errorx"
)

// HealthService 探测数据库和缓存
type HealthService interface {
	Check(ctx context.Context) (map[string]string, error)
}

type healthService struct {
	repos *repository.Repositories
	cache myredis.CacheService
}

func newHealthService(repos *repository.Repositories, cache myredis.CacheService) *healthService {
	return &healthService{repos: repos, cache: cache}
}

// Check 任一依赖不可用时返回 CodeServerBusy，结果里仍带每一项的状态
func (s *healthService) Check(ctx context.Context) (map[string]string, error) {
	result := map[string]string{"database": "ok", "cache": "ok"}
	var failed error
	if err := db.HealthCheck(s.repos.DB()); err != nil {
		result["database"] = err.Error()
		failed = errorx.Wrap(err, errorx.CodeDBError, "数据库不可用")
	}
	if err := s.cache.Ping(ctx); err != nil {
		result["cache"] = err.Error()
		if failed == nil {
			failed = errorx.Wrap(err, errorx.CodeCacheError, "缓存不可用")
		}
	}
	return result, failed
}
