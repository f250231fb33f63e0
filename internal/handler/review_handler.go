package handler

import (
	"library_server/internal/dto/request"
	"library_server/internal/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewSvc service.ReviewService
}

func NewReviewHandler(reviewSvc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewSvc: reviewSvc}
}

// Create 发表书评
// @Summary 发表书评
// @Tags reviews
// @Security BearerAuth
// @Param id path int true "图书 id"
// @Param body body request.CreateReviewRequest true "评分 1-10 和内容"
// @Success 200 {object} ResponseData{data=model.Review}
// @Failure 400 {object} ResponseData
// @Router /books/{id}/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	bookID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req request.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.reviewSvc.Create(actor(c), bookID, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// ListByBook GET /books/:id/reviews
func (h *ReviewHandler) ListByBook(c *gin.Context) {
	bookID, ok := idParam(c, "id")
	if !ok {
		return
	}
	data, err := h.reviewSvc.ListByBook(bookID, pageParams(c), endpoint(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
