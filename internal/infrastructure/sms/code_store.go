package sms

import (
	"context"

	myredis "library_server/internal/dao/redis"
	"library_server/pkg/constants"
	"library_server/pkg/errorx"
	"library_server/pkg/util/random"

	"go.uber.org/zap"
)

// codeStore 两种实现共用的验证码缓存逻辑
type codeStore struct {
	cache myredis.CacheService
}

func codeKey(telephone string) string {
	return constants.AuthCodeKeyPrefix + telephone
}

func failKey(telephone string) string {
	return constants.AuthCodeFailPrefix + telephone
}

// reserve 生成验证码并占位
// 先占位后发送，SetNX 保证并发请求只有一个能拿到发送权
func (s codeStore) reserve(ctx context.Context, telephone string) (string, error) {
	code, err := random.GetCode(6)
	if err != nil {
		zap.L().Error("生成验证码失败", zap.Error(err))
		return "", errorx.ErrServerBusy
	}
	ok, err := s.cache.SetNX(ctx, codeKey(telephone), code, constants.AuthCodeTTL)
	if err != nil {
		zap.L().Error("缓存写入验证码失败", zap.Error(err), zap.String("phone", telephone))
		return "", errorx.ErrServerBusy
	}
	if !ok {
		return "", errorx.New(errorx.CodeInvalidParam, "目前还不能发送验证码，请稍后重试或输入已发送的验证码")
	}
	// 新验证码重新计数
	if err := s.cache.Delete(ctx, failKey(telephone)); err != nil {
		zap.L().Warn("重置验证码错误次数失败", zap.Error(err), zap.String("phone", telephone))
	}
	return code, nil
}

// release 发送失败时删除占位，否则一个 TTL 内无法重发
func (s codeStore) release(ctx context.Context, telephone string) {
	if err := s.cache.Delete(ctx, codeKey(telephone)); err != nil {
		zap.L().Warn("回滚验证码占位失败", zap.Error(err), zap.String("phone", telephone))
	}
}

func (s codeStore) VerifyCode(ctx context.Context, telephone, code string) (bool, error) {
	stored, err := s.cache.Get(ctx, codeKey(telephone))
	if err != nil {
		return false, err
	}
	if stored == "" {
		return false, nil
	}
	if stored != code {
		s.recordFailure(ctx, telephone)
		return false, nil
	}
	s.discard(ctx, telephone)
	return true, nil
}

// recordFailure 输错计数，达到上限后作废当前验证码，只能重新获取
func (s codeStore) recordFailure(ctx context.Context, telephone string) {
	n, err := s.cache.Incr(ctx, failKey(telephone), constants.AuthCodeTTL)
	if err != nil {
		zap.L().Warn("记录验证码错误次数失败", zap.Error(err), zap.String("phone", telephone))
		return
	}
	if n >= constants.MaxAuthCodeFails {
		zap.L().Warn("验证码错误次数过多，已作废", zap.String("phone", telephone))
		s.discard(ctx, telephone)
	}
}

func (s codeStore) discard(ctx context.Context, telephone string) {
	for _, key := range []string{codeKey(telephone), failKey(telephone)} {
		if err := s.cache.Delete(ctx, key); err != nil {
			zap.L().Warn("删除验证码缓存失败", zap.Error(err), zap.String("key", key))
		}
	}
}
