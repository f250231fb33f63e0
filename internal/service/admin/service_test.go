package admin

import (
	"context"
	"testing"

	"library_server/internal/dao/db/dbtest"
	"library_server/internal/dto/request"
	"library_server/internal/service/audit"
	"library_server/pkg/enum"
	"library_server/pkg/errorx"
	"library_server/pkg/pagination"
	"library_server/pkg/util/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingPublisher struct{ n int }

func (p *countingPublisher) Publish(context.Context, []byte, []byte) error {
	p.n++
	return nil
}

func (p *countingPublisher) Close() error { return nil }

func TestLoginAppendsAdminlog(t *testing.T) {
	jwt.Init("test-secret", 5, 1)
	repos := dbtest.Open(t)
	a := dbtest.Admin(t, repos, "root", "secret")
	svc := NewAdminService(repos, audit.NewRecorder(&countingPublisher{}, nil))

	_, err := svc.Login(request.AdminLoginRequest{Name: "root", Pwd: "wrong"}, "1.1.1.1")
	assert.Equal(t, errorx.CodeInvalidPassword, errorx.GetCode(err))
	_, err = svc.Login(request.AdminLoginRequest{Name: "nobody", Pwd: "secret"}, "1.1.1.1")
	assert.Equal(t, errorx.CodeInvalidPassword, errorx.GetCode(err))

	n, err := repos.Adminlog.CountByAdmin(a.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	rsp, err := svc.Login(request.AdminLoginRequest{Name: "root", Pwd: "secret"}, "1.1.1.1")
	require.NoError(t, err)
	claims, err := jwt.ParseToken(rsp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, jwt.RoleAdmin, claims.Role)
	assert.Equal(t, a.ID, claims.UserID)

	n, _ = repos.Adminlog.CountByAdmin(a.ID)
	assert.EqualValues(t, 1, n)

	page, err := svc.ListAdminlogs(pagination.Params{Page: 1, PerPage: 10}, pagination.Endpoint{Path: "/admin/adminlogs"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "1.1.1.1", page.Items[0].IP)
}

func TestSetUserStatus(t *testing.T) {
	repos := dbtest.Open(t)
	pub := &countingPublisher{}
	svc := NewAdminService(repos, audit.NewRecorder(pub, nil))
	u := dbtest.User(t, repos, enum.RoleStaff, enum.UserPending)
	actor := request.Actor{ID: 1, Role: jwt.RoleAdmin, IP: "10.0.0.1"}

	rsp, err := svc.SetUserStatus(actor, u.ID, enum.UserApproved, "资料齐全")
	require.NoError(t, err)
	assert.Equal(t, enum.UserApproved, rsp.Status)
	assert.Equal(t, 1, pub.n)

	stored, _ := repos.User.FindByID(u.ID)
	assert.Equal(t, enum.UserApproved, stored.Status)

	_, err = svc.SetUserStatus(actor, u.ID, 9, "")
	assert.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))
	_, err = svc.SetUserStatus(actor, 999, enum.UserApproved, "")
	assert.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))

	logs, err := svc.ListOplogs(pagination.Params{Page: 1, PerPage: 10}, pagination.Endpoint{Path: "/admin/oplogs"})
	require.NoError(t, err)
	require.Len(t, logs.Items, 1)
	assert.Contains(t, logs.Items[0].Reason, "资料齐全")
	assert.Equal(t, 1, pub.n)
}
