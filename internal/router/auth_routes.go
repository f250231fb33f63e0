package router

import (
	"library_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes 注册登录、刷新、短信验证码路由
func (rt *Router) RegisterAuthRoutes(r *gin.Engine) {
	h := rt.handlers.Auth
	r.POST("/tokens", h.Login)
	r.POST("/tokens/sms", h.SmsLogin)
	r.POST("/tokens/refresh", h.Refresh)
	r.DELETE("/tokens", middleware.JWTAuth(), h.Logout)
	r.POST("/sms/code", h.SendSmsCode)
}
