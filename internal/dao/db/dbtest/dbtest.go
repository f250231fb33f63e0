// Package dbtest 测试用的内存 SQLite 仓储和数据构造函数
package dbtest

import (
	"fmt"
	"sync/atomic"
	"testing"

	"library_server/internal/config"
	"library_server/internal/dao/db"
	"library_server/internal/dao/db/repository"
	"library_server/internal/model"
	"library_server/pkg/enum"

	"github.com/stretchr/testify/require"
)

// Open 每次返回一个全新的内存库
func Open(t testing.TB) *repository.Repositories {
	t.Helper()
	gdb, err := db.Open(&config.DatabaseConfig{Driver: "sqlite", SqlitePath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(gdb) })
	return repository.NewRepositories(gdb)
}

var seq int64

// User 创建一个指定角色和状态的用户，密码固定为 pw
func User(t testing.TB, repos *repository.Repositories, role, status int8) *model.User {
	t.Helper()
	n := atomic.AddInt64(&seq, 1)
	u := &model.User{
		Truename:    fmt.Sprintf("user%d", n),
		Phone:       fmt.Sprintf("139%08d", n),
		RawPassword: "pw",
		RoleID:      role,
		Status:      status,
	}
	require.NoError(t, repos.User.Create(u))
	return u
}

// ApprovedUser 审核通过的普通职工
func ApprovedUser(t testing.TB, repos *repository.Repositories) *model.User {
	return User(t, repos, enum.RoleStaff, enum.UserApproved)
}

// Book 在新分类下创建一本书
func Book(t testing.TB, repos *repository.Repositories) *model.Book {
	t.Helper()
	n := atomic.AddInt64(&seq, 1)
	cat := &model.Category{Name: fmt.Sprintf("cat%d", n)}
	require.NoError(t, repos.Category.Create(cat))
	b := &model.Book{Title: fmt.Sprintf("book%d", n), CateID: cat.ID}
	require.NoError(t, repos.Book.Create(b))
	return b
}

// Admin 创建管理员
func Admin(t testing.TB, repos *repository.Repositories, name, pwd string) *model.Admin {
	t.Helper()
	a := &model.Admin{Name: name, RawPwd: pwd}
	require.NoError(t, repos.Admin.Create(a))
	return a
}
