package handler

import (
	"library_server/internal/dto/request"
	"library_server/internal/service"

	"github.com/gin-gonic/gin"
)

// BorrowHandler 读者发起借阅；审批在 AdminHandler 中
type BorrowHandler struct {
	borrowSvc service.BorrowService
}

func NewBorrowHandler(borrowSvc service.BorrowService) *BorrowHandler {
	return &BorrowHandler{borrowSvc: borrowSvc}
}

// Create 申请借阅
// @Summary 申请借阅
// @Description 仅审核通过的用户可以借阅，新记录状态为 0
// @Tags borrows
// @Security BearerAuth
// @Param body body request.CreateBorrowRequest true "图书 id"
// @Success 200 {object} ResponseData{data=model.BorrowInfo}
// @Failure 403 {object} ResponseData
// @Router /borrows [post]
func (h *BorrowHandler) Create(c *gin.Context) {
	var req request.CreateBorrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.borrowSvc.Create(actor(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
