package applybuy

import (
	"testing"

	"library_server/internal/dao/db/dbtest"
	"library_server/internal/dto/request"
	"library_server/internal/infrastructure/mq"
	"library_server/internal/service/audit"
	"library_server/pkg/enum"
	"library_server/pkg/errorx"
	"library_server/pkg/pagination"
	"library_server/pkg/util/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyBuyFlow(t *testing.T) {
	repos := dbtest.Open(t)
	svc := NewApplyBuyService(repos, audit.NewRecorder(mq.NewNoopPublisher(), nil))
	p := pagination.Params{Page: 1, PerPage: 10}

	staff := dbtest.ApprovedUser(t, repos)
	other := dbtest.ApprovedUser(t, repos)
	leader := dbtest.User(t, repos, enum.RoleLeader, enum.UserApproved)
	staffActor := request.Actor{ID: staff.ID, Role: jwt.RoleUser}
	leaderActor := request.Actor{ID: leader.ID, Role: jwt.RoleUser}

	_, err := svc.Create(staffActor, request.CreateApplyBuyRequest{Title: "SICP", LeaderID: other.ID})
	assert.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))
	_, err = svc.Create(staffActor, request.CreateApplyBuyRequest{Title: "SICP", LeaderID: 999})
	assert.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))

	apply, err := svc.Create(staffActor, request.CreateApplyBuyRequest{Title: "SICP", Isbn: "9780262510871", LeaderID: leader.ID})
	require.NoError(t, err)
	assert.Equal(t, enum.ApplyPending, apply.Status)

	// 组长看到提交给自己的，职工看到自己的，别人看不到
	page, err := svc.List(leaderActor, nil, p, pagination.Endpoint{})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	page, err = svc.List(request.Actor{ID: other.ID, Role: jwt.RoleUser}, nil, p, pagination.Endpoint{})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	page, err = svc.List(request.Actor{ID: 1, Role: jwt.RoleAdmin}, nil, p, pagination.Endpoint{})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)

	_, err = svc.Approve(staffActor, apply.ID, "")
	assert.Equal(t, errorx.CodeForbidden, errorx.GetCode(err))

	got, err := svc.Approve(leaderActor, apply.ID, "")
	require.NoError(t, err)
	assert.Equal(t, enum.ApplyApproved, got.Status)

	_, err = svc.Reject(leaderActor, apply.ID, "")
	assert.Equal(t, errorx.CodeConflict, errorx.GetCode(err))

	// 组长审批不写 oplog
	_, total, err := repos.Oplog.List(p)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestAdminDecisionWritesOplog(t *testing.T) {
	repos := dbtest.Open(t)
	svc := NewApplyBuyService(repos, audit.NewRecorder(mq.NewNoopPublisher(), nil))
	staff := dbtest.ApprovedUser(t, repos)
	leader := dbtest.User(t, repos, enum.RoleLeader, enum.UserApproved)

	apply, err := svc.Create(request.Actor{ID: staff.ID, Role: jwt.RoleUser}, request.CreateApplyBuyRequest{Title: "TAOCP", LeaderID: leader.ID})
	require.NoError(t, err)

	_, err = svc.Reject(request.Actor{ID: 1, Role: jwt.RoleAdmin, IP: "::1"}, apply.ID, "预算不足")
	require.NoError(t, err)

	_, total, err := repos.Oplog.List(pagination.Params{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}
