package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes 图书和分类浏览，无需认证
func (rt *Router) RegisterCatalogRoutes(r *gin.Engine) {
	h := rt.handlers.Catalog
	r.GET("/categories", h.ListCategories)
	r.GET("/categories/:id/books", h.ListBooksByCategory)
	r.GET("/books", h.ListBooks)
	r.GET("/books/:id", h.GetBook)
}
