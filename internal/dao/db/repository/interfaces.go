// Package repository 定义数据访问层接口和聚合结构
// 采用 Repository 模式将数据访问逻辑与业务逻辑分离
// 所有 Repository 接口在此文件定义，具体实现在各自的文件中
package repository

import (
	"library_server/internal/model"
	"library_server/pkg/pagination"

	"gorm.io/gorm"
)

// ==================== Repository 接口定义 ====================

// UserRepository 用户数据访问接口
type UserRepository interface {
	// FindByID 根据主键查找用户
	FindByID(id uint) (*model.User, error)
	// FindByTruename 根据真实姓名查找用户
	FindByTruename(truename string) (*model.User, error)
	// FindByPhone 根据手机号查找用户
	FindByPhone(phone string) (*model.User, error)
	// FindByUsername 根据用户名查找用户
	FindByUsername(username string) (*model.User, error)
	// FindByEmail 根据邮箱查找用户
	FindByEmail(email string) (*model.User, error)
	// List 分页列出全部用户，按 id 升序
	List(p pagination.Params) ([]model.User, int64, error)
	// Create 创建用户
	Create(user *model.User) error
	// Update 保存用户的全部字段
	Update(user *model.User) error
	// UpdateStatus 修改用户审核状态
	UpdateStatus(id uint, status int8) error
}

// FollowRepository 关注关系
type FollowRepository interface {
	Create(followerID, followedID uint) error
	Delete(followerID, followedID uint) error
	Exists(followerID, followedID uint) (bool, error)
	// ListFollowers 关注了 userID 的用户
	ListFollowers(userID uint, p pagination.Params) ([]model.User, int64, error)
	// ListFollowed userID 关注的用户
	ListFollowed(userID uint, p pagination.Params) ([]model.User, int64, error)
}

// CategoryRepository 图书分类
type CategoryRepository interface {
	FindByID(id uint) (*model.Category, error)
	FindByName(name string) (*model.Category, error)
	List(p pagination.Params) ([]model.Category, int64, error)
	Create(category *model.Category) error
}

// BookRepository 图书
type BookRepository interface {
	FindByID(id uint) (*model.Book, error)
	List(p pagination.Params) ([]model.Book, int64, error)
	ListByCategory(cateID uint, p pagination.Params) ([]model.Book, int64, error)
	Create(book *model.Book) error
	Update(book *model.Book) error
	Delete(id uint) error
}

// AdminRepository 管理员
type AdminRepository interface {
	FindByID(id uint) (*model.Admin, error)
	FindByName(name string) (*model.Admin, error)
	Create(admin *model.Admin) error
}

// AdminlogRepository 管理员登录日志，只追加
type AdminlogRepository interface {
	Create(log *model.Adminlog) error
	List(p pagination.Params) ([]model.Adminlog, int64, error)
	CountByAdmin(adminID uint) (int64, error)
}

// OplogRepository 管理员操作日志，只追加
type OplogRepository interface {
	Create(log *model.Oplog) error
	List(p pagination.Params) ([]model.Oplog, int64, error)
}

// BorrowRepository 借阅申请
type BorrowRepository interface {
	FindByID(id uint) (*model.BorrowInfo, error)
	Create(info *model.BorrowInfo) error
	ListByUser(userID uint, p pagination.Params) ([]model.BorrowInfo, int64, error)
	// ListByStatus status 为 nil 时列出全部
	ListByStatus(status *int8, p pagination.Params) ([]model.BorrowInfo, int64, error)
	// Transition 条件更新状态：只有当前状态等于 from 时才改为 to
	Transition(id uint, from, to int8) error
	CountByBook(bookID uint) (int64, error)
}

// ReviewRepository 书评
type ReviewRepository interface {
	Create(review *model.Review) error
	ListByBook(bookID uint, p pagination.Params) ([]model.Review, int64, error)
	ListByUser(userID uint, p pagination.Params) ([]model.Review, int64, error)
	CountByBook(bookID uint) (int64, error)
}

// ApplyBuyFilter 荐购申请列表过滤条件，零值字段不参与过滤
type ApplyBuyFilter struct {
	UserID   uint
	LeaderID uint
	Status   *int8
}

// ApplyBuyRepository 荐购申请
type ApplyBuyRepository interface {
	FindByID(id uint) (*model.ApplyBuy, error)
	Create(apply *model.ApplyBuy) error
	List(filter ApplyBuyFilter, p pagination.Params) ([]model.ApplyBuy, int64, error)
	Transition(id uint, from, to int8) error
}

// ==================== 聚合 ====================

// Repositories 聚合所有 Repository 实例
// 作为依赖注入的入口，Service 层通过此结构访问数据层
type Repositories struct {
	db       *gorm.DB
	User     UserRepository
	Follow   FollowRepository
	Category CategoryRepository
	Book     BookRepository
	Admin    AdminRepository
	Adminlog AdminlogRepository
	Oplog    OplogRepository
	Borrow   BorrowRepository
	Review   ReviewRepository
	ApplyBuy ApplyBuyRepository
}

// NewRepositories 用同一个 *gorm.DB（可以是事务句柄）创建全部 Repository
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:       db,
		User:     NewUserRepository(db),
		Follow:   NewFollowRepository(db),
		Category: NewCategoryRepository(db),
		Book:     NewBookRepository(db),
		Admin:    NewAdminRepository(db),
		Adminlog: NewAdminlogRepository(db),
		Oplog:    NewOplogRepository(db),
		Borrow:   NewBorrowRepository(db),
		Review:   NewReviewRepository(db),
		ApplyBuy: NewApplyBuyRepository(db),
	}
}

// Transaction 在数据库事务中执行函数
// fn 返回 nil 时提交，返回错误或 panic 时回滚
// fn 内必须使用 txRepos，外层的 Repositories 不在事务里
func (r *Repositories) Transaction(fn func(txRepos *Repositories) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}

// DB 返回底层连接，仅供启动阶段的健康检查和关闭使用
func (r *Repositories) DB() *gorm.DB {
	return r.db
}
