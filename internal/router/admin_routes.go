// Package router 提供 HTTP 路由注册
// 本文件定义管理员相关的路由
package router

import (
	"library_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAdminRoutes 注册管理员路由
// 登录公开，其余接口要求 role=admin
func (rt *Router) RegisterAdminRoutes(r *gin.Engine) {
	h := rt.handlers.Admin
	r.POST("/admin/tokens", h.Login)

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.JWTAuth(), middleware.AdminOnly())
	{
		// ===== 日志 =====
		adminGroup.GET("/adminlogs", h.ListAdminlogs)
		adminGroup.GET("/oplogs", h.ListOplogs)

		// ===== 用户审核 =====
		adminGroup.PUT("/users/:id/status", h.SetUserStatus)

		// ===== 图书管理 =====
		adminGroup.POST("/categories", rt.handlers.Catalog.CreateCategory)
		adminGroup.POST("/books", rt.handlers.Catalog.CreateBook)
		adminGroup.PUT("/books/:id", rt.handlers.Catalog.UpdateBook)
		adminGroup.DELETE("/books/:id", rt.handlers.Catalog.DeleteBook)

		// ===== 借阅审批 =====
		adminGroup.GET("/borrows", h.ListBorrows)
		adminGroup.PUT("/borrows/:id/approve", h.ApproveBorrow)
		adminGroup.PUT("/borrows/:id/reject", h.RejectBorrow)
	}
}
