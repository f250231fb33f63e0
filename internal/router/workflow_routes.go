package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterWorkflowRoutes 借阅、书评、荐购（需要认证）
func (rt *Router) RegisterWorkflowRoutes(rg *gin.RouterGroup) {
	rg.POST("/borrows", rt.handlers.Borrow.Create)

	rg.POST("/books/:id/reviews", rt.handlers.Review.Create)
	rg.GET("/books/:id/reviews", rt.handlers.Review.ListByBook)

	applyGroup := rg.Group("/apply-buys")
	{
		applyGroup.POST("", rt.handlers.ApplyBuy.Create)
		applyGroup.GET("", rt.handlers.ApplyBuy.List)
		applyGroup.PUT("/:id/approve", rt.handlers.ApplyBuy.Approve)
		applyGroup.PUT("/:id/reject", rt.handlers.ApplyBuy.Reject)
	}
}
