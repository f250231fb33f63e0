package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes 注册用户相关路由
// 注册接口公开，其余需要认证
func (rt *Router) RegisterUserRoutes(r *gin.Engine, rg *gin.RouterGroup) {
	h := rt.handlers.User
	r.POST("/users", h.Register)

	userGroup := rg.Group("/users")
	{
		userGroup.GET("", h.ListUsers)
		userGroup.GET("/:id", h.GetUser)
		userGroup.PUT("/:id", h.UpdateUser)

		// ===== 关注 =====
		userGroup.GET("/:id/followers", h.ListFollowers)
		userGroup.GET("/:id/followed", h.ListFollowed)
		userGroup.POST("/:id/follow", h.Follow)
		userGroup.DELETE("/:id/follow", h.Unfollow)

		userGroup.GET("/:id/borrows", h.ListBorrows)
		userGroup.GET("/:id/reviews", h.ListReviews)
	}
}
