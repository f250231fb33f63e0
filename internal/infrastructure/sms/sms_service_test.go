package sms

import (
	"context"
	"testing"

	"library_server/internal/config"
	"library_server/internal/dao/redis/redistest"
	"library_server/pkg/constants"
	"library_server/pkg/errorx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldUseMock(t *testing.T) {
	assert.True(t, shouldUseMock(config.AuthCodeConfig{Mode: "mock", AccessKeyID: "a", AccessKeySecret: "b"}))
	assert.True(t, shouldUseMock(config.AuthCodeConfig{Mode: "aliyun"}))
	assert.True(t, shouldUseMock(config.AuthCodeConfig{Mode: "aliyun", AccessKeyID: "your AccessKey ID", AccessKeySecret: "x"}))
	assert.False(t, shouldUseMock(config.AuthCodeConfig{Mode: "aliyun", AccessKeyID: "LTAIxxx", AccessKeySecret: "secret"}))
}

func TestLocalSendThrottlesAndVerifies(t *testing.T) {
	ctx := context.Background()
	cache, _ := redistest.Open(t)
	svc, err := Init(config.AuthCodeConfig{Mode: "mock"}, cache)
	require.NoError(t, err)

	require.NoError(t, svc.SendVerificationCode(ctx, "13800000000"))
	err = svc.SendVerificationCode(ctx, "13800000000")
	assert.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))

	code, err := cache.Get(ctx, constants.AuthCodeKeyPrefix+"13800000000")
	require.NoError(t, err)
	assert.Len(t, code, 6)

	ok, err := svc.VerifyCode(ctx, "13800000000", "000000x")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.VerifyCode(ctx, "13800000000", code)
	require.NoError(t, err)
	assert.True(t, ok)

	// 验证码只能用一次
	ok, _ = svc.VerifyCode(ctx, "13800000000", code)
	assert.False(t, ok)
}

func TestVerifyCodeLocksAfterRepeatedFailures(t *testing.T) {
	ctx := context.Background()
	cache, srv := redistest.Open(t)
	svc := NewLocalSmsService(cache)
	phone := "13900000000"

	require.NoError(t, svc.SendVerificationCode(ctx, phone))
	code, err := cache.Get(ctx, constants.AuthCodeKeyPrefix+phone)
	require.NoError(t, err)

	for i := 0; i < constants.MaxAuthCodeFails; i++ {
		ok, err := svc.VerifyCode(ctx, phone, "wrong")
		require.NoError(t, err)
		assert.False(t, ok)
	}
	// 输错次数用完后正确的验证码也失效
	ok, err := svc.VerifyCode(ctx, phone, code)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, srv.Exists(constants.AuthCodeKeyPrefix+phone))
	assert.False(t, srv.Exists(constants.AuthCodeFailPrefix+phone))

	// 作废后可以立即重新获取，计数从零开始
	require.NoError(t, svc.SendVerificationCode(ctx, phone))
	code, _ = cache.Get(ctx, constants.AuthCodeKeyPrefix+phone)
	ok, _ = svc.VerifyCode(ctx, phone, "wrong")
	assert.False(t, ok)
	ok, err = svc.VerifyCode(ctx, phone, code)
	require.NoError(t, err)
	assert.True(t, ok)
}
