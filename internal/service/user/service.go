// Package user 处理读者注册、资料维护和关注关系
package user

import (
	"strings"

	"go.uber.org/zap"

	"library_server/internal/dao/db/repository"
	"library_server/internal/dto/request"
	"library_server/internal/dto/respond"
	"library_server/internal/model"
	"library_server/pkg/constants"
	"library_server/pkg/errorx"
	"library_server/pkg/pagination"
)

// 注册与更新的提示文案
const (
	msgRegisterMissing = "必须填写真实姓名、手机号和密码"
	msgTruenameTaken   = "该用户名已经被注册"
	msgPhoneTaken      = "该手机号已被注册"
	msgUsernameTaken   = "please use a different username"
	msgEmailTaken      = "please use a different email address"
	msgUserNotFound    = "用户不存在"
	msgAlreadyFollowed = "已经关注过该用户"
	msgPasswordTooLong = "密码不能超过 72 字节"
)

// userService 用户业务逻辑实现
// 通过构造函数注入 Repository 依赖
type userService struct {
	repos *repository.Repositories
}

// NewUserService 构造函数
func NewUserService(repos *repository.Repositories) *userService {
	return &userService{repos: repos}
}

// Register 注册
// 顺序：缺字段 -> 姓名已存在 -> 手机号已存在，成功时只插入一行
// 字段按原样保存，空串视为缺失
func (u *userService) Register(req request.RegisterRequest) error {
	truename, phone := req.Truename, req.Phone
	if truename == "" || phone == "" || req.Password == "" {
		return errorx.New(errorx.CodeInvalidParam, msgRegisterMissing)
	}
	if err := checkPassword(req.Password); err != nil {
		return err
	}

	return u.repos.Transaction(func(tx *repository.Repositories) error {
		if _, err := tx.User.FindByTruename(truename); err == nil {
			return errorx.New(errorx.CodeUserExist, msgTruenameTaken)
		} else if !errorx.IsNotFound(err) {
			return err
		}
		if _, err := tx.User.FindByPhone(phone); err == nil {
			return errorx.New(errorx.CodeUserExist, msgPhoneTaken)
		} else if !errorx.IsNotFound(err) {
			return err
		}

		user := &model.User{
			Truename:    truename,
			Phone:       phone,
			RawPassword: req.Password,
			Avatar:      constants.DefaultAvatar,
		}
		if err := tx.User.Create(user); err != nil {
			// 并发注册时手机号由唯一索引兜底
			return duplicateMessage(err)
		}
		zap.L().Info("user registered", zap.Uint("user_id", user.ID))
		return nil
	})
}

// checkPassword 超长密码在写库前拒绝，否则 bcrypt 报错会变成 500
func checkPassword(pw string) error {
	if len(pw) > model.MaxPasswordBytes {
		return errorx.New(errorx.CodeInvalidParam, msgPasswordTooLong)
	}
	return nil
}

// duplicateMessage 唯一约束冲突转成对应字段的提示
func duplicateMessage(err error) error {
	switch repository.DuplicateColumn(err, "phone", "username", "email") {
	case "phone":
		return errorx.Wrap(err, errorx.CodeUserExist, msgPhoneTaken)
	case "username":
		return errorx.Wrap(err, errorx.CodeInvalidParam, msgUsernameTaken)
	case "email":
		return errorx.Wrap(err, errorx.CodeInvalidParam, msgEmailTaken)
	}
	return err
}

// GetUser 单个用户
func (u *userService) GetUser(id uint) (*respond.UserRespond, error) {
	user, err := u.repos.User.FindByID(id)
	if err != nil {
		return nil, errorx.OnNotFound(err, msgUserNotFound)
	}
	rsp := respond.NewUserRespond(*user)
	return &rsp, nil
}

// ListUsers 分页列出用户
func (u *userService) ListUsers(p pagination.Params, ep pagination.Endpoint) (*pagination.Page[respond.UserRespond], error) {
	users, total, err := u.repos.User.List(p)
	if err != nil {
		return nil, err
	}
	return pagination.New(pagination.Map(users, respond.NewUserRespond), p, total, ep), nil
}

// ListFollowers 关注 id 的用户，先确认 id 存在再分页
func (u *userService) ListFollowers(id uint, p pagination.Params, ep pagination.Endpoint) (*pagination.Page[respond.UserRespond], error) {
	return u.listRelated(id, p, ep, u.repos.Follow.ListFollowers)
}

// ListFollowed id 关注的用户
func (u *userService) ListFollowed(id uint, p pagination.Params, ep pagination.Endpoint) (*pagination.Page[respond.UserRespond], error) {
	return u.listRelated(id, p, ep, u.repos.Follow.ListFollowed)
}

func (u *userService) listRelated(id uint, p pagination.Params, ep pagination.Endpoint,
	list func(uint, pagination.Params) ([]model.User, int64, error)) (*pagination.Page[respond.UserRespond], error) {
	if _, err := u.repos.User.FindByID(id); err != nil {
		return nil, errorx.OnNotFound(err, msgUserNotFound)
	}
	users, total, err := list(id, p)
	if err != nil {
		return nil, err
	}
	return pagination.New(pagination.Map(users, respond.NewUserRespond), p, total, ep), nil
}

// UpdateUser 局部更新，只有本人或管理员可以修改
// username / email 改成别人正在用的值时拒绝，改成自己当前的值不算冲突
// phone 不做预检查，由唯一索引兜底
func (u *userService) UpdateUser(actor request.Actor, id uint, req request.UpdateUserRequest) (*respond.UserRespond, error) {
	if !actor.IsAdmin() && !actor.Is(id) {
		return nil, errorx.ErrForbidden
	}
	if req.Password != nil {
		if err := checkPassword(*req.Password); err != nil {
			return nil, err
		}
	}

	var updated model.User
	err := u.repos.Transaction(func(tx *repository.Repositories) error {
		user, err := tx.User.FindByID(id)
		if err != nil {
			return errorx.OnNotFound(err, msgUserNotFound)
		}

		if req.Username != nil {
			name := normalizeOptional(req.Username)
			if name != nil && !sameValue(user.Username, *name) {
				other, err := tx.User.FindByUsername(*name)
				if err := takenByOther(other, err, user.ID, msgUsernameTaken); err != nil {
					return err
				}
			}
			user.Username = name
		}
		if req.Email != nil {
			email := normalizeOptional(req.Email)
			if email != nil && !sameValue(user.Email, *email) {
				other, err := tx.User.FindByEmail(*email)
				if err := takenByOther(other, err, user.ID, msgEmailTaken); err != nil {
					return err
				}
			}
			user.Email = email
		}
		applyProfile(user, req)

		if err := tx.User.Update(user); err != nil {
			return duplicateMessage(err)
		}
		updated = *user
		return nil
	})
	if err != nil {
		return nil, err
	}
	rsp := respond.NewUserRespond(updated)
	return &rsp, nil
}

func applyProfile(user *model.User, req request.UpdateUserRequest) {
	if req.Nickname != nil {
		user.Nickname = *req.Nickname
	}
	if req.Truename != nil {
		user.Truename = *req.Truename
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}
	if req.Openid != nil {
		user.Openid = *req.Openid
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Password != nil && *req.Password != "" {
		user.RawPassword = *req.Password
	}
}

// normalizeOptional 空串表示清空，存为 NULL
func normalizeOptional(v *string) *string {
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	return &s
}

func sameValue(cur *string, v string) bool {
	return cur != nil && *cur == v
}

// takenByOther 查到的记录属于别的用户时返回 msg
func takenByOther(found *model.User, err error, self uint, msg string) error {
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil
		}
		return err
	}
	if found.ID == self {
		return nil
	}
	return errorx.New(errorx.CodeInvalidParam, msg)
}

// Follow 当前用户关注 id
func (u *userService) Follow(actor request.Actor, id uint) error {
	if !actor.IsUser() {
		return errorx.ErrForbidden
	}
	if actor.ID == id {
		return errorx.New(errorx.CodeInvalidParam, "不能关注自己")
	}
	return u.repos.Transaction(func(tx *repository.Repositories) error {
		if _, err := tx.User.FindByID(id); err != nil {
			return errorx.OnNotFound(err, msgUserNotFound)
		}
		followed, err := tx.Follow.Exists(actor.ID, id)
		if err != nil {
			return err
		}
		if followed {
			return errorx.New(errorx.CodeDuplicate, msgAlreadyFollowed)
		}
		// 并发关注由唯一索引兜底
		if err := tx.Follow.Create(actor.ID, id); err != nil {
			if errorx.IsDuplicate(err) {
				return errorx.Wrap(err, errorx.CodeDuplicate, msgAlreadyFollowed)
			}
			return err
		}
		return nil
	})
}

// Unfollow 取消关注
func (u *userService) Unfollow(actor request.Actor, id uint) error {
	if !actor.IsUser() {
		return errorx.ErrForbidden
	}
	return errorx.OnNotFound(u.repos.Follow.Delete(actor.ID, id), "尚未关注该用户")
}
