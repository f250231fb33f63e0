package request

import "library_server/pkg/util/jwt"

// Actor 当前请求的身份，由 handler 从 JWT 上下文构造
// Role 为 admin 时 ID 是 admin 表的主键，否则是 user 表的主键
type Actor struct {
	ID   uint
	Role string
	IP   string
}

// IsAdmin 是否后台管理员
func (a Actor) IsAdmin() bool {
	return a.Role == jwt.RoleAdmin
}

// IsUser 是否前台用户
func (a Actor) IsUser() bool {
	return a.Role == jwt.RoleUser
}

// Is 是否就是 userID 对应的前台用户
func (a Actor) Is(userID uint) bool {
	return a.IsUser() && a.ID == userID
}
