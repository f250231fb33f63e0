// Package handler 提供 HTTP 请求处理器
// 本文件处理用户相关的 API 请求
package handler

import (
	"errors"
	"io"

	"library_server/internal/dto/request"
	"library_server/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler 用户请求处理器
// 通过构造函数注入 Service，遵循依赖倒置原则
type UserHandler struct {
	userSvc   service.UserService
	borrowSvc service.BorrowService
	reviewSvc service.ReviewService
}

// NewUserHandler 创建用户处理器实例
func NewUserHandler(userSvc service.UserService, borrowSvc service.BorrowService, reviewSvc service.ReviewService) *UserHandler {
	return &UserHandler{userSvc: userSvc, borrowSvc: borrowSvc, reviewSvc: reviewSvc}
}

// Register 用户注册
// @Summary 用户注册
// @Description 必须提供真实姓名、手机号和密码，成功时 data 为 null
// @Tags users
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param body body request.RegisterRequest true "注册信息"
// @Success 200 {object} ResponseData "注册成功"
// @Failure 400 {object} ResponseData "缺少字段或姓名/手机号已被注册"
// @Router /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	// 1. 绑定请求参数，JSON 和表单都接受
	var req request.RegisterRequest
	// 空请求体交给 Service 返回缺少字段的提示
	if err := c.ShouldBind(&req); err != nil && !errors.Is(err, io.EOF) {
		HandleParamError(c, err)
		return
	}

	// 2. 调用 Service 层处理业务逻辑
	if err := h.userSvc.Register(req); err != nil {
		HandleError(c, err)
		return
	}

	// 3. 返回成功响应
	HandleSuccessMsg(c, "注册成功", nil)
}

// GetUser 单个用户
// @Summary 获取用户
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path int true "用户 id"
// @Success 200 {object} ResponseData{data=respond.UserRespond}
// @Failure 404 {object} ResponseData
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	data, err := h.userSvc.GetUser(id)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// ListUsers 用户列表
// @Summary 分页获取用户
// @Tags users
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param per_page query int false "每页数量，最大 100" default(10)
// @Success 200 {object} ResponseData
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	data, err := h.userSvc.ListUsers(pageParams(c), endpoint(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// ListFollowers GET /users/:id/followers
func (h *UserHandler) ListFollowers(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	data, err := h.userSvc.ListFollowers(id, pageParams(c), endpoint(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// ListFollowed GET /users/:id/followed
func (h *UserHandler) ListFollowed(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	data, err := h.userSvc.ListFollowed(id, pageParams(c), endpoint(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateUser 局部更新
// @Summary 更新用户资料
// @Description 只修改请求里出现的字段；username/email 被他人占用时返回 400
// @Tags users
// @Security BearerAuth
// @Accept json
// @Param id path int true "用户 id"
// @Param body body request.UpdateUserRequest true "要修改的字段"
// @Success 200 {object} ResponseData{data=respond.UserRespond}
// @Failure 400 {object} ResponseData
// @Failure 403 {object} ResponseData
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	// 空请求体等同于不修改任何字段
	var req request.UpdateUserRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.userSvc.UpdateUser(actor(c), id, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Follow POST /users/:id/follow
func (h *UserHandler) Follow(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.userSvc.Follow(actor(c), id); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccessMsg(c, "关注成功", nil)
}

// Unfollow DELETE /users/:id/follow
func (h *UserHandler) Unfollow(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.userSvc.Unfollow(actor(c), id); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccessMsg(c, "已取消关注", nil)
}

// ListBorrows GET /users/:id/borrows，本人或管理员
func (h *UserHandler) ListBorrows(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	data, err := h.borrowSvc.ListByUser(actor(c), id, pageParams(c), endpoint(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// ListReviews GET /users/:id/reviews
func (h *UserHandler) ListReviews(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	data, err := h.reviewSvc.ListByUser(id, pageParams(c), endpoint(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
