// Package service 定义业务层接口
// 本文件定义所有 Service 接口，供 Handler 层调用
// 接口设计遵循依赖倒置原则，便于测试和解耦
package service

import (
	"context"

	"library_server/internal/dto/request"
	"library_server/internal/dto/respond"
	"library_server/internal/model"
	"library_server/pkg/pagination"
)

// UserService 读者注册、资料和关注关系
type UserService interface {
	// Register 注册，成功不返回实体
	Register(req request.RegisterRequest) error
	// GetUser 获取单个用户
	GetUser(id uint) (*respond.UserRespond, error)
	// ListUsers 分页获取用户列表
	ListUsers(p pagination.Params, ep pagination.Endpoint) (*pagination.Page[respond.UserRespond], error)
	// ListFollowers 关注了 id 的用户
	ListFollowers(id uint, p pagination.Params, ep pagination.Endpoint) (*pagination.Page[respond.UserRespond], error)
	// ListFollowed id 关注的用户
	ListFollowed(id uint, p pagination.Params, ep pagination.Endpoint) (*pagination.Page[respond.UserRespond], error)
	// UpdateUser 局部更新用户资料
	UpdateUser(actor request.Actor, id uint, req request.UpdateUserRequest) (*respond.UserRespond, error)
	// Follow 关注
	Follow(actor request.Actor, id uint) error
	// Unfollow 取消关注
	Unfollow(actor request.Actor, id uint) error
}

// AuthService 登录、刷新与注销
type AuthService interface {
	Login(ctx context.Context, req request.LoginRequest) (*respond.LoginRespond, error)
	SmsLogin(ctx context.Context, req request.SmsLoginRequest) (*respond.LoginRespond, error)
	SendSmsCode(ctx context.Context, phone string) error
	Refresh(ctx context.Context, refreshToken string) (*respond.RefreshRespond, error)
	Logout(ctx context.Context, actor request.Actor) error
}

// AdminService 后台管理
type AdminService interface {
	// Login 管理员登录，同时写 adminlog
	Login(req request.AdminLoginRequest, ip string) (*respond.AdminLoginRespond, error)
	ListAdminlogs(p pagination.Params, ep pagination.Endpoint) (*pagination.Page[model.Adminlog], error)
	ListOplogs(p pagination.Params, ep pagination.Endpoint) (*pagination.Page[model.Oplog], error)
	// SetUserStatus 审核 / 拉黑用户
	SetUserStatus(actor request.Actor, userID uint, status int8, reason string) (*respond.UserRespond, error)
}

// CatalogService 图书与分类
type CatalogService interface {
	ListCategories(p pagination.Params, ep pagination.Endpoint) (*pagination.Page[model.Category], error)
	CreateCategory(actor request.Actor, req request.CreateCategoryRequest) (*model.Category, error)
	ListBooks(p pagination.Params, ep pagination.Endpoint) (*pagination.Page[model.Book], error)
	ListBooksByCategory(cateID uint, p pagination.Params, ep pagination.Endpoint) (*pagination.Page[model.Book], error)
	GetBook(id uint) (*model.Book, error)
	CreateBook(actor request.Actor, req request.CreateBookRequest) (*model.Book, error)
	UpdateBook(actor request.Actor, id uint, req request.UpdateBookRequest) (*model.Book, error)
	DeleteBook(actor request.Actor, id uint, reason string) error
}

// BorrowService 借阅
type BorrowService interface {
	Create(actor request.Actor, req request.CreateBorrowRequest) (*model.BorrowInfo, error)
	List(status *int8, p pagination.Params, ep pagination.Endpoint) (*pagination.Page[model.BorrowInfo], error)
	ListByUser(actor request.Actor, userID uint, p pagination.Params, ep pagination.Endpoint) (*pagination.Page[model.BorrowInfo], error)
	Approve(actor request.Actor, id uint, reason string) (*model.BorrowInfo, error)
	Reject(actor request.Actor, id uint, reason string) (*model.BorrowInfo, error)
}

// ReviewService 书评
type ReviewService interface {
	Create(actor request.Actor, bookID uint, req request.CreateReviewRequest) (*model.Review, error)
	ListByBook(bookID uint, p pagination.Params, ep pagination.Endpoint) (*pagination.Page[model.Review], error)
	ListByUser(userID uint, p pagination.Params, ep pagination.Endpoint) (*pagination.Page[model.Review], error)
}

// ApplyBuyService 荐购
type ApplyBuyService interface {
	Create(actor request.Actor, req request.CreateApplyBuyRequest) (*model.ApplyBuy, error)
	List(actor request.Actor, status *int8, p pagination.Params, ep pagination.Endpoint) (*pagination.Page[model.ApplyBuy], error)
	Approve(actor request.Actor, id uint, reason string) (*model.ApplyBuy, error)
	Reject(actor request.Actor, id uint, reason string) (*model.ApplyBuy, error)
}
