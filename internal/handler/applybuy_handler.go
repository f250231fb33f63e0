package handler

import (
	"library_server/internal/dto/request"
	"library_server/internal/model"
	"library_server/internal/service"

	"github.com/gin-gonic/gin"
)

// ApplyBuyHandler 荐购申请，组长审批
type ApplyBuyHandler struct {
	applyBuySvc service.ApplyBuyService
}

func NewApplyBuyHandler(applyBuySvc service.ApplyBuyService) *ApplyBuyHandler {
	return &ApplyBuyHandler{applyBuySvc: applyBuySvc}
}

// Create 提交荐购
// @Summary 提交荐购申请
// @Tags apply-buys
// @Security BearerAuth
// @Param body body request.CreateApplyBuyRequest true "荐购信息"
// @Success 200 {object} ResponseData{data=model.ApplyBuy}
// @Router /apply-buys [post]
func (h *ApplyBuyHandler) Create(c *gin.Context) {
	var req request.CreateApplyBuyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.applyBuySvc.Create(actor(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// List 组长看到发给自己的，管理员看到全部，其余用户看到自己提交的
// @Summary 荐购列表
// @Tags apply-buys
// @Security BearerAuth
// @Param status query int false "0 待审 1 通过 2 驳回"
// @Success 200 {object} ResponseData{data=pagination.Page[model.ApplyBuy]}
// @Router /apply-buys [get]
func (h *ApplyBuyHandler) List(c *gin.Context) {
	status, ok := statusQuery(c)
	if !ok {
		return
	}
	data, err := h.applyBuySvc.List(actor(c), status, pageParams(c), endpoint(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

func (h *ApplyBuyHandler) Approve(c *gin.Context) {
	h.decide(c, h.applyBuySvc.Approve)
}

func (h *ApplyBuyHandler) Reject(c *gin.Context) {
	h.decide(c, h.applyBuySvc.Reject)
}

func (h *ApplyBuyHandler) decide(c *gin.Context, decide func(request.Actor, uint, string) (*model.ApplyBuy, error)) {
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
