package handler

import (
	"net/http"

	"library_server/internal/service"
	"library_server/pkg/errorx"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HealthHandler struct {
	healthSvc service.HealthService
}

func NewHealthHandler(healthSvc service.HealthService) *HealthHandler {
	return &HealthHandler{healthSvc: healthSvc}
}

// Check 存活探针
// @Summary 健康检查
// @Tags ops
// @Success 200 {object} ResponseData
// @Failure 503 {object} ResponseData
// @Router /healthz [get]
func (h *HealthHandler) Check(c *gin.Context) {
	result, err := h.healthSvc.Check(c.Request.Context())
	if err != nil {
		zap.L().Warn("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, ResponseData{
			Code: errorx.CodeServerBusy,
			Msg:  errorx.ErrServerBusy.Msg,
			Data: result,
		})
		return
	}
	HandleSuccess(c, result)
}
