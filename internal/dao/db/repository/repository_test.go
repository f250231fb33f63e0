package repository_test

import (
	"errors"
	"fmt"
	"testing"

	"library_server/internal/config"
	"library_server/internal/dao/db"
	"library_server/internal/dao/db/repository"
	"library_server/internal/model"
	"library_server/pkg/enum"
	"library_server/pkg/errorx"
	"library_server/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepos(t *testing.T) *repository.Repositories {
	t.Helper()
	gdb, err := db.Open(&config.DatabaseConfig{Driver: "sqlite", SqlitePath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(gdb) })
	return repository.NewRepositories(gdb)
}

func createUser(t *testing.T, repos *repository.Repositories, name, phone string) *model.User {
	t.Helper()
	u := &model.User{Truename: name, Phone: phone, RawPassword: "pw"}
	require.NoError(t, repos.User.Create(u))
	return u
}

func TestUserUniqueConstraints(t *testing.T) {
	repos := newRepos(t)
	createUser(t, repos, "alice", "13800000001")

	err := repos.User.Create(&model.User{Truename: "bob", Phone: "13800000001", RawPassword: "pw"})
	require.Error(t, err)
	assert.Equal(t, errorx.CodeDuplicate, errorx.GetCode(err))
	assert.Equal(t, "phone", repository.DuplicateColumn(err, "truename", "phone"))

	// 重名只在注册流程里检查，表上没有唯一约束
	require.NoError(t, repos.User.Create(&model.User{Truename: "alice", Phone: "13800000002", RawPassword: "pw"}))
}

func TestUserNullableUsernameDoesNotCollide(t *testing.T) {
	repos := newRepos(t)
	createUser(t, repos, "a", "13800000001")
	createUser(t, repos, "b", "13800000002")

	name := "reader"
	u, err := repos.User.FindByTruename("a")
	require.NoError(t, err)
	u.Username = &name
	require.NoError(t, repos.User.Update(u))

	v, err := repos.User.FindByTruename("b")
	require.NoError(t, err)
	v.Username = &name
	err = repos.User.Update(v)
	assert.True(t, errorx.IsDuplicate(err))
}

func TestUserFindNotFound(t *testing.T) {
	repos := newRepos(t)
	_, err := repos.User.FindByID(99)
	assert.True(t, errorx.IsNotFound(err))
	assert.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))
}

func TestUserListPagination(t *testing.T) {
	repos := newRepos(t)
	for i := 0; i < 25; i++ {
		createUser(t, repos, fmt.Sprintf("u%02d", i), fmt.Sprintf("138%08d", i))
	}

	users, total, err := repos.User.List(pagination.Params{Page: 3, PerPage: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 25, total)
	require.Len(t, users, 5)
	assert.Equal(t, "u20", users[0].Truename)

	users, total, err = repos.User.List(pagination.Params{Page: 9, PerPage: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 25, total)
	assert.NotNil(t, users)
	assert.Empty(t, users)

	// 页码足够大时 Offset 会溢出，仍然应该是空页
	users, _, err = repos.User.List(pagination.NewParams("9223372036854775807", "2", 10))
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestFollowersAndFollowed(t *testing.T) {
	repos := newRepos(t)
	a := createUser(t, repos, "a", "13800000001")
	b := createUser(t, repos, "b", "13800000002")
	c := createUser(t, repos, "c", "13800000003")

	require.NoError(t, repos.Follow.Create(b.ID, a.ID))
	require.NoError(t, repos.Follow.Create(c.ID, a.ID))
	require.NoError(t, repos.Follow.Create(a.ID, c.ID))
	assert.True(t, errorx.IsDuplicate(repos.Follow.Create(b.ID, a.ID)))

	followers, total, err := repos.Follow.ListFollowers(a.ID, pagination.Params{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, followers, 2)
	assert.Equal(t, "b", followers[0].Truename)
	assert.Equal(t, b.ID, followers[0].ID)

	followed, total, err := repos.Follow.ListFollowed(a.ID, pagination.Params{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, c.ID, followed[0].ID)

	require.NoError(t, repos.Follow.Delete(b.ID, a.ID))
	assert.True(t, errorx.IsNotFound(repos.Follow.Delete(b.ID, a.ID)))
	ok, err := repos.Follow.Exists(b.ID, a.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBorrowTransition(t *testing.T) {
	repos := newRepos(t)
	info := &model.BorrowInfo{UserID: 1, BookID: 1}
	require.NoError(t, repos.Borrow.Create(info))
	assert.Equal(t, enum.ApplyPending, info.Status)

	require.NoError(t, repos.Borrow.Transition(info.ID, enum.ApplyPending, enum.ApplyApproved))

	err := repos.Borrow.Transition(info.ID, enum.ApplyPending, enum.ApplyRejected)
	assert.Equal(t, errorx.CodeConflict, errorx.GetCode(err))

	err = repos.Borrow.Transition(999, enum.ApplyPending, enum.ApplyApproved)
	assert.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))

	got, err := repos.Borrow.FindByID(info.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.ApplyApproved, got.Status)
}

func TestReviewScoreCheckConstraint(t *testing.T) {
	repos := newRepos(t)
	require.NoError(t, repos.Review.Create(&model.Review{UserID: 1, BookID: 1, Score: 10}))
	assert.Error(t, repos.Review.Create(&model.Review{UserID: 1, BookID: 1, Score: 11}))

	n, err := repos.Review.CountByBook(1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestBookPreloadsCategory(t *testing.T) {
	repos := newRepos(t)
	cat := &model.Category{Name: "文学"}
	require.NoError(t, repos.Category.Create(cat))
	assert.True(t, errorx.IsDuplicate(repos.Category.Create(&model.Category{Name: "文学"})))

	book := &model.Book{Title: "围城", Author: "钱钟书", CateID: cat.ID}
	require.NoError(t, repos.Book.Create(book))

	got, err := repos.Book.FindByID(book.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Category)
	assert.Equal(t, "文学", got.Category.Name)

	books, total, err := repos.Book.ListByCategory(cat.ID, pagination.Params{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.NotNil(t, books[0].Category)

	require.NoError(t, repos.Book.Delete(book.ID))
	assert.True(t, errorx.IsNotFound(repos.Book.Delete(book.ID)))
}

func TestApplyBuyFilter(t *testing.T) {
	repos := newRepos(t)
	require.NoError(t, repos.ApplyBuy.Create(&model.ApplyBuy{Title: "a", UserID: 1, LeaderID: 2}))
	require.NoError(t, repos.ApplyBuy.Create(&model.ApplyBuy{Title: "b", UserID: 3, LeaderID: 2}))
	require.NoError(t, repos.ApplyBuy.Create(&model.ApplyBuy{Title: "c", UserID: 1, LeaderID: 4}))

	list, total, err := repos.ApplyBuy.List(repository.ApplyBuyFilter{LeaderID: 2}, pagination.Params{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, list, 2)

	require.NoError(t, repos.ApplyBuy.Transition(list[0].ID, enum.ApplyPending, enum.ApplyRejected))
	pending := enum.ApplyPending
	_, total, err = repos.ApplyBuy.List(repository.ApplyBuyFilter{UserID: 1, Status: &pending}, pagination.Params{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestTransactionRollsBack(t *testing.T) {
	repos := newRepos(t)
	boom := errors.New("boom")

	err := repos.Transaction(func(tx *repository.Repositories) error {
		require.NoError(t, tx.Adminlog.Create(&model.Adminlog{AdminID: 1, IP: "127.0.0.1"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	n, err := repos.Adminlog.CountByAdmin(1)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSeedCreatesAdminOnce(t *testing.T) {
	gdb, err := db.Open(&config.DatabaseConfig{Driver: "sqlite", SqlitePath: ":memory:"})
	require.NoError(t, err)
	defer db.Close(gdb)

	cfg := &config.AdminConfig{Name: "root", Password: "secret"}
	require.NoError(t, db.Seed(gdb, cfg))
	require.NoError(t, db.Seed(gdb, cfg))

	repos := repository.NewRepositories(gdb)
	admin, err := repos.Admin.FindByName("root")
	require.NoError(t, err)
	assert.True(t, admin.CheckPwd("secret"))

	_, err = repos.Category.FindByName(db.DefaultCategory)
	assert.NoError(t, err)
}
