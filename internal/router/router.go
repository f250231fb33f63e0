// Package router 提供 HTTP 路由注册
// 本文件是路由注册的入口，聚合所有子模块的路由
package router

import (
	"library_server/internal/handler"
	"library_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Router 持有 Handler 聚合，按模块注册路由
type Router struct {
	handlers *handler.Handlers
}

func NewRouter(handlers *handler.Handlers) *Router {
	return &Router{handlers: handlers}
}

// RegisterRoutes 注册所有路由
// 在 https_server.Init() 中调用
func (rt *Router) RegisterRoutes(r *gin.Engine, enableSwagger bool) {
	r.GET("/healthz", rt.handlers.Health.Check)

	// 公开接口 (无需认证)
	rt.RegisterAuthRoutes(r)
	rt.RegisterCatalogRoutes(r)

	// 需要认证的接口
	authed := r.Group("")
	authed.Use(middleware.JWTAuth())
	rt.RegisterUserRoutes(r, authed)
	rt.RegisterWorkflowRoutes(authed)

	// 管理员接口
	rt.RegisterAdminRoutes(r)

	if enableSwagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}
