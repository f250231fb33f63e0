package user

import (
	"errors"
	"strings"
	"testing"

	"library_server/internal/dao/db/dbtest"
	"library_server/internal/dto/request"
	"library_server/pkg/errorx"
	"library_server/pkg/pagination"
	"library_server/pkg/util/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func msgOf(err error) string {
	var ce *errorx.CodeError
	if errors.As(err, &ce) {
		return ce.Msg
	}
	return err.Error()
}

func TestRegister(t *testing.T) {
	repos := dbtest.Open(t)
	svc := NewUserService(repos)

	require.NoError(t, svc.Register(request.RegisterRequest{Truename: "alice", Phone: "12345678901", Password: "x"}))
	u, err := repos.User.FindByPhone("12345678901")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Truename)
	assert.NotEqual(t, "x", u.Password)
	assert.True(t, u.CheckPassword("x"))

	cases := []struct {
		name string
		req  request.RegisterRequest
		code int
		msg  string
	}{
		{"missing", request.RegisterRequest{Truename: "bob", Phone: "12345678902"}, errorx.CodeInvalidParam, msgRegisterMissing},
		{"truename", request.RegisterRequest{Truename: "alice", Phone: "12345678903", Password: "x"}, errorx.CodeUserExist, msgTruenameTaken},
		{"phone", request.RegisterRequest{Truename: "carol", Phone: "12345678901", Password: "x"}, errorx.CodeUserExist, msgPhoneTaken},
		// 两个都重复时先报姓名
		{"both", request.RegisterRequest{Truename: "alice", Phone: "12345678901", Password: "x"}, errorx.CodeUserExist, msgTruenameTaken},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.Register(tc.req)
			require.Error(t, err)
			assert.Equal(t, tc.code, errorx.GetCode(err))
			assert.Equal(t, tc.msg, msgOf(err))
		})
	}

	_, total, err := repos.User.List(pagination.Params{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestUpdateUsernameConflict(t *testing.T) {
	repos := dbtest.Open(t)
	svc := NewUserService(repos)
	a := dbtest.ApprovedUser(t, repos)
	b := dbtest.ApprovedUser(t, repos)
	actorA := request.Actor{ID: a.ID, Role: jwt.RoleUser}
	actorB := request.Actor{ID: b.ID, Role: jwt.RoleUser}

	_, err := svc.UpdateUser(actorA, a.ID, request.UpdateUserRequest{Username: strPtr("reader"), Email: strPtr("a@example.com")})
	require.NoError(t, err)

	_, err = svc.UpdateUser(actorB, b.ID, request.UpdateUserRequest{Username: strPtr("reader")})
	require.Error(t, err)
	assert.Equal(t, msgUsernameTaken, msgOf(err))
	assert.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))

	_, err = svc.UpdateUser(actorB, b.ID, request.UpdateUserRequest{Email: strPtr("a@example.com")})
	assert.Equal(t, msgEmailTaken, msgOf(err))

	stored, err := repos.User.FindByID(b.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Username)

	// 改成自己当前的值不算冲突
	rsp, err := svc.UpdateUser(actorA, a.ID, request.UpdateUserRequest{Username: strPtr("reader"), Nickname: strPtr("A")})
	require.NoError(t, err)
	assert.Equal(t, "A", rsp.Nickname)
	require.NotNil(t, rsp.Username)
	assert.Equal(t, "reader", *rsp.Username)
}

func TestUpdatePhoneUsesStoreConstraint(t *testing.T) {
	repos := dbtest.Open(t)
	svc := NewUserService(repos)
	a := dbtest.ApprovedUser(t, repos)
	b := dbtest.ApprovedUser(t, repos)

	_, err := svc.UpdateUser(request.Actor{ID: b.ID, Role: jwt.RoleUser}, b.ID, request.UpdateUserRequest{Phone: strPtr(a.Phone)})
	require.Error(t, err)
	assert.Equal(t, msgPhoneTaken, msgOf(err))
}

func TestUpdateTruenameAllowsExistingName(t *testing.T) {
	repos := dbtest.Open(t)
	svc := NewUserService(repos)
	a := dbtest.ApprovedUser(t, repos)
	b := dbtest.ApprovedUser(t, repos)

	rsp, err := svc.UpdateUser(request.Actor{ID: b.ID, Role: jwt.RoleUser}, b.ID, request.UpdateUserRequest{Truename: strPtr(a.Truename)})
	require.NoError(t, err)
	assert.Equal(t, a.Truename, rsp.Truename)

	// 注册时仍然检查重名
	err = svc.Register(request.RegisterRequest{Truename: a.Truename, Phone: "12300000000", Password: "x"})
	assert.Equal(t, msgTruenameTaken, msgOf(err))
}

func TestPasswordTooLong(t *testing.T) {
	repos := dbtest.Open(t)
	svc := NewUserService(repos)
	long := strings.Repeat("p", 80)

	err := svc.Register(request.RegisterRequest{Truename: "dave", Phone: "12345678909", Password: long})
	require.Error(t, err)
	assert.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))
	assert.Equal(t, msgPasswordTooLong, msgOf(err))
	_, err = repos.User.FindByPhone("12345678909")
	assert.True(t, errorx.IsNotFound(err))

	require.NoError(t, svc.Register(request.RegisterRequest{Truename: "erin", Phone: "12345678908", Password: strings.Repeat("p", 72)}))

	u := dbtest.ApprovedUser(t, repos)
	_, err = svc.UpdateUser(request.Actor{ID: u.ID, Role: jwt.RoleUser}, u.ID, request.UpdateUserRequest{Password: strPtr(long)})
	assert.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))
	stored, _ := repos.User.FindByID(u.ID)
	assert.True(t, stored.CheckPassword("pw"))
}

func TestRegisterStoresValuesVerbatim(t *testing.T) {
	repos := dbtest.Open(t)
	svc := NewUserService(repos)

	require.NoError(t, svc.Register(request.RegisterRequest{Truename: " frank ", Phone: "12345678907", Password: "x"}))
	u, err := repos.User.FindByPhone("12345678907")
	require.NoError(t, err)
	assert.Equal(t, " frank ", u.Truename)
}

func TestUpdateOwnership(t *testing.T) {
	repos := dbtest.Open(t)
	svc := NewUserService(repos)
	a := dbtest.ApprovedUser(t, repos)
	b := dbtest.ApprovedUser(t, repos)

	_, err := svc.UpdateUser(request.Actor{ID: a.ID, Role: jwt.RoleUser}, b.ID, request.UpdateUserRequest{Nickname: strPtr("x")})
	assert.Equal(t, errorx.CodeForbidden, errorx.GetCode(err))

	rsp, err := svc.UpdateUser(request.Actor{ID: 1, Role: jwt.RoleAdmin}, b.ID, request.UpdateUserRequest{Nickname: strPtr("x"), Password: strPtr("new")})
	require.NoError(t, err)
	assert.Equal(t, "x", rsp.Nickname)

	stored, _ := repos.User.FindByID(b.ID)
	assert.True(t, stored.CheckPassword("new"))

	_, err = svc.UpdateUser(request.Actor{ID: 1, Role: jwt.RoleAdmin}, 999, request.UpdateUserRequest{})
	assert.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))
}

func TestFollowFlow(t *testing.T) {
	repos := dbtest.Open(t)
	svc := NewUserService(repos)
	a := dbtest.ApprovedUser(t, repos)
	b := dbtest.ApprovedUser(t, repos)
	actorB := request.Actor{ID: b.ID, Role: jwt.RoleUser}

	assert.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(svc.Follow(actorB, b.ID)))
	assert.Equal(t, errorx.CodeNotFound, errorx.GetCode(svc.Follow(actorB, 999)))
	require.NoError(t, svc.Follow(actorB, a.ID))
	err := svc.Follow(actorB, a.ID)
	assert.Equal(t, errorx.CodeDuplicate, errorx.GetCode(err))
	assert.Equal(t, msgAlreadyFollowed, err.Error())

	ep := pagination.Endpoint{Path: "/users/1/followers"}
	page, err := svc.ListFollowers(a.ID, pagination.Params{Page: 1, PerPage: 10}, ep)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, b.ID, page.Items[0].ID)

	page, err = svc.ListFollowed(b.ID, pagination.Params{Page: 1, PerPage: 10}, ep)
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Pagination.TotalItems)

	_, err = svc.ListFollowers(999, pagination.Params{Page: 1, PerPage: 10}, ep)
	assert.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))

	require.NoError(t, svc.Unfollow(actorB, a.ID))
	assert.Equal(t, errorx.CodeNotFound, errorx.GetCode(svc.Unfollow(actorB, a.ID)))
	// 取消后可以重新关注
	require.NoError(t, svc.Follow(actorB, a.ID))
}
