// Package service 提供业务逻辑层
// 本文件实现 Service 层的依赖注入和聚合
package service

import (
	"library_server/internal/dao/db/repository"
	myredis "library_server/internal/dao/redis"
	"library_server/internal/infrastructure/mq"
	"library_server/internal/infrastructure/sms"
	"library_server/internal/service/admin"
	"library_server/internal/service/applybuy"
	"library_server/internal/service/audit"
	"library_server/internal/service/auth"
	"library_server/internal/service/borrow"
	"library_server/internal/service/catalog"
	"library_server/internal/service/review"
	"library_server/internal/service/user"
)

// Services 聚合所有 Service 实例
// 作为依赖注入的入口，Handler 层通过它访问各个 Service
type Services struct {
	User     UserService
	Auth     AuthService
	Admin    AdminService
	Catalog  CatalogService
	Borrow   BorrowService
	Review   ReviewService
	ApplyBuy ApplyBuyService
	Health   HealthService
}

// NewServices 创建并注入所有 Service 实例
// 审计事件借用缓存的 Worker Pool 异步投递
func NewServices(repos *repository.Repositories, cache myredis.AsyncCacheService, publisher mq.Publisher, smsService sms.SmsService) *Services {
	recorder := audit.NewRecorder(publisher, cache)
	return &Services{
		User:     user.NewUserService(repos),
		Auth:     auth.NewAuthService(repos, cache, smsService),
		Admin:    admin.NewAdminService(repos, recorder),
		Catalog:  catalog.NewCatalogService(repos, recorder),
		Borrow:   borrow.NewBorrowService(repos, recorder),
		Review:   review.NewReviewService(repos),
		ApplyBuy: applybuy.NewApplyBuyService(repos, recorder),
		Health:   newHealthService(repos, cache),
	}
}
