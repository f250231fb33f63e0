package respond

import (
	"time"

	"library_server/internal/model"
)

// UserRespond 用户信息，除密码哈希外的全部字段
type UserRespond struct {
	ID       uint      `json:"id"`
	Openid   string    `json:"openid"`
	Nickname string    `json:"nickname"`
	Truename string    `json:"truename"`
	Phone    string    `json:"phone"`
	Avatar   string    `json:"avatar"`
	Username *string   `json:"username"`
	Email    *string   `json:"email"`
	RoleID   int8      `json:"role_id"`
	Status   int8      `json:"status"`
	AddTime  time.Time `json:"addtime"`
}

// NewUserRespond 实体转响应
func NewUserRespond(u model.User) UserRespond {
	return UserRespond{
		ID:       u.ID,
		Openid:   u.Openid,
		Nickname: u.Nickname,
		Truename: u.Truename,
		Phone:    u.Phone,
		Avatar:   u.Avatar,
		Username: u.Username,
		Email:    u.Email,
		RoleID:   u.RoleID,
		Status:   u.Status,
		AddTime:  u.AddTime,
	}
}
