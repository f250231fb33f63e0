package handler

import (
	"library_server/internal/dto/request"
	"library_server/internal/model"
	"library_server/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler 后台管理：登录、日志、用户审核、借阅审批
type AdminHandler struct {
	adminSvc  service.AdminService
	borrowSvc service.BorrowService
}

func NewAdminHandler(adminSvc service.AdminService, borrowSvc service.BorrowService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc, borrowSvc: borrowSvc}
}

// Login 管理员登录，成功时记录 adminlog
// @Summary 管理员登录
// @Tags admin
// @Param body body request.AdminLoginRequest true "管理员账号密码"
// @Success 200 {object} ResponseData{data=respond.AdminLoginRespond}
// @Failure 401 {object} ResponseData
// @Router /admin/tokens [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req request.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.adminSvc.Login(req, c.ClientIP())
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

func (h *AdminHandler) ListAdminlogs(c *gin.Context) {
	data, err := h.adminSvc.ListAdminlogs(pageParams(c), endpoint(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

func (h *AdminHandler) ListOplogs(c *gin.Context) {
	data, err := h.adminSvc.ListOplogs(pageParams(c), endpoint(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// SetUserStatus 审核 / 拉黑
// @Summary 设置用户状态
// @Description 0 待审核 1 通过 2 不通过 3 拉黑
// @Tags admin
// @Security BearerAuth
// @Param id path int true "用户 id"
// @Param body body request.SetUserStatusRequest true "状态和原因"
// @Success 200 {object} ResponseData{data=respond.UserRespond}
// @Router /admin/users/{id}/status [put]
func (h *AdminHandler) SetUserStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req request.SetUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.adminSvc.SetUserStatus(actor(c), id, *req.Status, req.Reason)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// ListBorrows GET /admin/borrows?status=
func (h *AdminHandler) ListBorrows(c *gin.Context) {
	status, ok := statusQuery(c)
	if !ok {
		return
	}
	data, err := h.borrowSvc.List(status, pageParams(c), endpoint(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// ApproveBorrow PUT /admin/borrows/:id/approve
func (h *AdminHandler) ApproveBorrow(c *gin.Context) {
	h.decideBorrow(c, h.borrowSvc.Approve)
}

// RejectBorrow PUT /admin/borrows/:id/reject
func (h *AdminHandler) RejectBorrow(c *gin.Context) {
	h.decideBorrow(c, h.borrowSvc.Reject)
}

func (h *AdminHandler) decideBorrow(c *gin.Context, decide func(request.Actor, uint, string) (*model.BorrowInfo, error)) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req request.ReviewDecisionRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := decide(actor(c), id, req.Reason)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
