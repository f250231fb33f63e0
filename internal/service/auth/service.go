// Package auth 提供认证相关的业务逻辑
// 处理密码登录、短信登录、Token 刷新与注销
package auth

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"library_server/internal/dao/db/repository"
	myredis "library_server/internal/dao/redis"
	"library_server/internal/dto/request"
	"library_server/internal/dto/respond"
	"library_server/internal/infrastructure/sms"
	"library_server/internal/model"
	"library_server/pkg/constants"
	"library_server/pkg/enum"
	"library_server/pkg/errorx"
	"library_server/pkg/util/jwt"
)

// Service 认证服务实现
type Service struct {
	repos *repository.Repositories
	cache myredis.CacheService // 缓存服务（依赖倒置）
	sms   sms.SmsService
}

// NewAuthService 创建认证服务实例
func NewAuthService(repos *repository.Repositories, cache myredis.CacheService, smsService sms.SmsService) *Service {
	return &Service{
		repos: repos,
		cache: cache,
		sms:   smsService,
	}
}

// TokenKey Refresh Token ID 在缓存中的 key，同一身份只保留最新一次登录
func TokenKey(role string, id uint) string {
	return constants.UserTokenKeyPrefix + role + ":" + strconv.FormatUint(uint64(id), 10)
}

// Login 手机号密码登录
func (s *Service) Login(ctx context.Context, req request.LoginRequest) (*respond.LoginRespond, error) {
	user, err := s.repos.User.FindByPhone(req.Phone)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUserNotExist, "用户不存在，请注册")
		}
		zap.L().Error("login query user", zap.Error(err))
		return nil, err
	}
	if !user.CheckPassword(req.Password) {
		return nil, errorx.New(errorx.CodeInvalidPassword, "密码不正确，请重试")
	}
	return s.loginUser(ctx, user)
}

// SmsLogin 短信验证码登录
func (s *Service) SmsLogin(ctx context.Context, req request.SmsLoginRequest) (*respond.LoginRespond, error) {
	ok, err := s.sms.VerifyCode(ctx, req.Phone, req.Code)
	if err != nil {
		zap.L().Error("verify sms code", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if !ok {
		return nil, errorx.New(errorx.CodeInvalidParam, "验证码错误或已过期")
	}

	user, err := s.repos.User.FindByPhone(req.Phone)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUserNotExist, "用户不存在，请注册")
		}
		return nil, err
	}
	return s.loginUser(ctx, user)
}

// SendSmsCode 发送短信验证码
func (s *Service) SendSmsCode(ctx context.Context, phone string) error {
	return s.sms.SendVerificationCode(ctx, phone)
}

// loginUser 状态检查后签发双 Token
func (s *Service) loginUser(ctx context.Context, user *model.User) (*respond.LoginRespond, error) {
	if err := checkLoginStatus(user.Status); err != nil {
		return nil, err
	}
	access, refresh, err := s.issueTokens(ctx, user.ID, jwt.RoleUser)
	if err != nil {
		return nil, err
	}
	return &respond.LoginRespond{
		User:         respond.NewUserRespond(*user),
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

// checkLoginStatus 审核不通过和拉黑的账号不能登录，待审核可以登录但不能借阅
func checkLoginStatus(status int8) error {
	switch status {
	case enum.UserRejected:
		return errorx.New(errorx.CodeForbidden, "账号审核未通过")
	case enum.UserBlacklisted:
		return errorx.New(errorx.CodeForbidden, "账号已被拉黑")
	}
	return nil
}

// issueTokens 生成双 Token，Refresh Token ID 写入缓存实现单点互踢
func (s *Service) issueTokens(ctx context.Context, id uint, role string) (string, string, error) {
	accessToken, err := jwt.GenerateAccessToken(id, role)
	if err != nil {
		zap.L().Error("生成 Access Token 失败", zap.Error(err))
		return "", "", errorx.ErrServerBusy
	}
	refreshToken, tokenID, err := jwt.GenerateRefreshToken(id, role)
	if err != nil {
		zap.L().Error("生成 Refresh Token 失败", zap.Error(err))
		return "", "", errorx.ErrServerBusy
	}
	if err := s.cache.Set(ctx, TokenKey(role, id), tokenID, jwt.RefreshTokenExpiry()); err != nil {
		// 不阻塞登录流程，仅记录日志
		zap.L().Error("存储 Token ID 失败", zap.Error(err))
	}
	return accessToken, refreshToken, nil
}

// ValidateTokenID 验证 Token ID 是否为该身份最近一次登录签发的
func (s *Service) ValidateTokenID(ctx context.Context, role string, id uint, tokenID string) (bool, error) {
	valid, err := s.cache.Get(ctx, TokenKey(role, id))
	if err != nil {
		return false, err
	}
	if valid == "" {
		return false, nil
	}
	return tokenID == valid, nil
}

// Refresh 用 Refresh Token 换新的 Access Token
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*respond.RefreshRespond, error) {
	claims, err := jwt.ParseToken(refreshToken)
	if err != nil || claims.Subject != jwt.SubjectRefresh {
		return nil, errorx.New(errorx.CodeUnauthorized, "Refresh Token 无效，请重新登录")
	}

	ok, err := s.ValidateTokenID(ctx, claims.Role, claims.UserID, claims.TokenID)
	if err != nil {
		zap.L().Error("校验 Token ID 失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if !ok {
		return nil, errorx.New(errorx.CodeUnauthorized, "登录已失效，请重新登录")
	}

	if claims.Role == jwt.RoleUser {
		user, err := s.repos.User.FindByID(claims.UserID)
		if err != nil {
			if errorx.IsNotFound(err) {
				return nil, errorx.New(errorx.CodeUnauthorized, "用户不存在")
			}
			return nil, err
		}
		if err := checkLoginStatus(user.Status); err != nil {
			return nil, err
		}
	}

	access, err := jwt.GenerateAccessToken(claims.UserID, claims.Role)
	if err != nil {
		zap.L().Error("生成 Access Token 失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return &respond.RefreshRespond{AccessToken: access}, nil
}

// Logout 删除缓存中的 Token ID，之后的刷新请求都会失败
func (s *Service) Logout(ctx context.Context, actor request.Actor) error {
	return s.cache.Delete(ctx, TokenKey(actor.Role, actor.ID))
}
