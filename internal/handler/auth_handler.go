package handler

import (
	"library_server/internal/dto/request"
	"library_server/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler 登录、刷新、注销、短信验证码
type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login 密码登录
// @Summary 手机号密码登录
// @Tags auth
// @Accept json
// @Param body body request.LoginRequest true "手机号和密码"
// @Success 200 {object} ResponseData{data=respond.LoginRespond}
// @Failure 401 {object} ResponseData
// @Router /tokens [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.authSvc.Login(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// SmsLogin 短信验证码登录
// @Summary 短信验证码登录
// @Tags auth
// @Param body body request.SmsLoginRequest true "手机号和验证码"
// @Success 200 {object} ResponseData{data=respond.LoginRespond}
// @Router /tokens/sms [post]
func (h *AuthHandler) SmsLogin(c *gin.Context) {
	var req request.SmsLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.authSvc.SmsLogin(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// SendSmsCode 发送验证码
// @Summary 发送短信验证码
// @Tags auth
// @Param body body request.SendSmsCodeRequest true "手机号"
// @Success 200 {object} ResponseData
// @Router /sms/code [post]
func (h *AuthHandler) SendSmsCode(c *gin.Context) {
	var req request.SendSmsCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.authSvc.SendSmsCode(c.Request.Context(), req.Phone); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccessMsg(c, "验证码已发送", nil)
}

// Refresh 用 Refresh Token 换 Access Token
// @Summary 刷新 Access Token
// @Tags auth
// @Param body body request.RefreshTokenRequest true "Refresh Token"
// @Success 200 {object} ResponseData{data=respond.RefreshRespond}
// @Router /tokens/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req request.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.authSvc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Logout DELETE /tokens
// @Summary 注销
// @Tags auth
// @Security BearerAuth
// @Success 200 {object} ResponseData
// @Router /tokens [delete]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authSvc.Logout(c.Request.Context(), actor(c)); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccessMsg(c, "已退出登录", nil)
}
