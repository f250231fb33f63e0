package auth

import (
	"context"
	"testing"

	"library_server/internal/dao/db/dbtest"
	myredis "library_server/internal/dao/redis"
	"library_server/internal/dao/redis/redistest"
	"library_server/internal/dto/request"
	"library_server/internal/infrastructure/sms"
	"library_server/pkg/constants"
	"library_server/pkg/enum"
	"library_server/pkg/errorx"
	"library_server/pkg/util/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*Service, *myredis.RedisCache) {
	t.Helper()
	jwt.Init("test-secret", 5, 1)
	cache, _ := redistest.Open(t)
	return NewAuthService(dbtest.Open(t), cache, sms.NewLocalSmsService(cache)), cache
}

func TestLoginAndRefresh(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	u := dbtest.ApprovedUser(t, svc.repos)

	_, err := svc.Login(ctx, request.LoginRequest{Phone: u.Phone, Password: "bad"})
	assert.Equal(t, errorx.CodeInvalidPassword, errorx.GetCode(err))
	_, err = svc.Login(ctx, request.LoginRequest{Phone: "10000000000", Password: "pw"})
	assert.Equal(t, errorx.CodeUserNotExist, errorx.GetCode(err))

	rsp, err := svc.Login(ctx, request.LoginRequest{Phone: u.Phone, Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, u.ID, rsp.User.ID)

	claims, err := jwt.ParseToken(rsp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, jwt.RoleUser, claims.Role)

	refreshed, err := svc.Refresh(ctx, rsp.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	// Access Token 不能当 Refresh Token 用
	_, err = svc.Refresh(ctx, rsp.AccessToken)
	assert.Equal(t, errorx.CodeUnauthorized, errorx.GetCode(err))

	require.NoError(t, svc.Logout(ctx, request.Actor{ID: u.ID, Role: jwt.RoleUser}))
	_, err = svc.Refresh(ctx, rsp.RefreshToken)
	assert.Equal(t, errorx.CodeUnauthorized, errorx.GetCode(err))
}

func TestSecondLoginInvalidatesFirstRefreshToken(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	u := dbtest.ApprovedUser(t, svc.repos)

	first, err := svc.Login(ctx, request.LoginRequest{Phone: u.Phone, Password: "pw"})
	require.NoError(t, err)
	_, err = svc.Login(ctx, request.LoginRequest{Phone: u.Phone, Password: "pw"})
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, first.RefreshToken)
	assert.Equal(t, errorx.CodeUnauthorized, errorx.GetCode(err))
}

func TestLoginRefusesRejectedAndBlacklisted(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	for _, status := range []int8{enum.UserRejected, enum.UserBlacklisted} {
		u := dbtest.User(t, svc.repos, enum.RoleStaff, status)
		_, err := svc.Login(ctx, request.LoginRequest{Phone: u.Phone, Password: "pw"})
		assert.Equal(t, errorx.CodeForbidden, errorx.GetCode(err))
	}
	pending := dbtest.User(t, svc.repos, enum.RoleStaff, enum.UserPending)
	_, err := svc.Login(ctx, request.LoginRequest{Phone: pending.Phone, Password: "pw"})
	assert.NoError(t, err)
}

func TestSmsLogin(t *testing.T) {
	ctx := context.Background()
	svc, cache := newService(t)
	u := dbtest.ApprovedUser(t, svc.repos)

	require.NoError(t, svc.SendSmsCode(ctx, u.Phone))
	code, err := cache.Get(ctx, constants.AuthCodeKeyPrefix+u.Phone)
	require.NoError(t, err)

	// 验证码首位不为 0
	_, err = svc.SmsLogin(ctx, request.SmsLoginRequest{Phone: u.Phone, Code: "000000"})
	assert.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))

	rsp, err := svc.SmsLogin(ctx, request.SmsLoginRequest{Phone: u.Phone, Code: code})
	require.NoError(t, err)
	assert.Equal(t, u.ID, rsp.User.ID)
}
