package handler

import (
	"library_server/internal/dto/request"
	"library_server/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler 分类和图书
type CatalogHandler struct {
	catalogSvc service.CatalogService
}

func NewCatalogHandler(catalogSvc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

// ListCategories 分页获取分类
// @Summary 分类列表
// @Tags catalog
// @Param page query int false "页码"
// @Param per_page query int false "每页条数，最大 100"
// @Success 200 {object} ResponseData{data=pagination.Page[model.Category]}
// @Router /categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	data, err := h.catalogSvc.ListCategories(pageParams(c), endpoint(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// CreateCategory 新建分类（管理员）
// @Summary 新建分类
// @Tags admin
// @Security BearerAuth
// @Param body body request.CreateCategoryRequest true "分类名"
// @Success 200 {object} ResponseData{data=model.Category}
// @Failure 400 {object} ResponseData "该分类已存在"
// @Router /admin/categories [post]
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req request.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.catalogSvc.CreateCategory(actor(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// ListBooks 分页获取图书
// @Summary 图书列表
// @Tags catalog
// @Param page query int false "页码"
// @Param per_page query int false "每页条数，最大 100"
// @Success 200 {object} ResponseData{data=pagination.Page[model.Book]}
// @Router /books [get]
func (h *CatalogHandler) ListBooks(c *gin.Context) {
	data, err := h.catalogSvc.ListBooks(pageParams(c), endpoint(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// ListBooksByCategory GET /categories/:id/books
func (h *CatalogHandler) ListBooksByCategory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	data, err := h.catalogSvc.ListBooksByCategory(id, pageParams(c), endpoint(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetBook 图书详情
// @Summary 图书详情
// @Tags catalog
// @Param id path int true "图书 id"
// @Success 200 {object} ResponseData{data=model.Book}
// @Failure 404 {object} ResponseData
// @Router /books/{id} [get]
func (h *CatalogHandler) GetBook(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	data, err := h.catalogSvc.GetBook(id)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// CreateBook POST /admin/books
func (h *CatalogHandler) CreateBook(c *gin.Context) {
	var req request.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.catalogSvc.CreateBook(actor(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateBook PUT /admin/books/:id，只更新传入的字段
func (h *CatalogHandler) UpdateBook(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req request.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.catalogSvc.UpdateBook(actor(c), id, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// DeleteBook 物理删除图书，原因通过 ?reason= 传入
// @Summary 删除图书
// @Tags admin
// @Security BearerAuth
// @Param id path int true "图书 id"
// @Param reason query string false "操作原因"
// @Success 200 {object} ResponseData
// @Failure 409 {object} ResponseData "仍有借阅或书评引用"
// @Router /admin/books/{id} [delete]
func (h *CatalogHandler) DeleteBook(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.catalogSvc.DeleteBook(actor(c), id, c.Query("reason")); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccessMsg(c, "删除成功", nil)
}
