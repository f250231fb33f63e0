// Package handler 提供 HTTP 请求处理器
// 本文件定义 Handler 聚合结构和构造函数
package handler

import (
	"library_server/internal/config"
	"library_server/internal/service"
)

// Handlers 聚合所有 Handler 实例
// Router 层通过此结构访问各个 Handler
type Handlers struct {
	User     *UserHandler
	Auth     *AuthHandler
	Admin    *AdminHandler
	Catalog  *CatalogHandler
	Borrow   *BorrowHandler
	Review   *ReviewHandler
	ApplyBuy *ApplyBuyHandler
	Health   *HealthHandler
}

// NewHandlers 创建并注入所有 Handler 实例
// cfg 为 nil 时使用默认每页条数
func NewHandlers(svc *service.Services, cfg *config.PaginationConfig) *Handlers {
	if cfg != nil && cfg.DefaultPerPage > 0 {
		defaultPerPage = cfg.DefaultPerPage
	}
	return &Handlers{
		User:     NewUserHandler(svc.User, svc.Borrow, svc.Review),
		Auth:     NewAuthHandler(svc.Auth),
		Admin:    NewAdminHandler(svc.Admin, svc.Borrow),
		Catalog:  NewCatalogHandler(svc.Catalog),
		Borrow:   NewBorrowHandler(svc.Borrow),
		Review:   NewReviewHandler(svc.Review),
		ApplyBuy: NewApplyBuyHandler(svc.ApplyBuy),
		Health:   NewHealthHandler(svc.Health),
	}
}
