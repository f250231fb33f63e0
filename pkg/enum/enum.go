// Package enum 业务状态枚举
package enum

// 用户角色 role_id
const (
	RoleStaff  int8 = 0 // 普通职工
	RoleAdmin  int8 = 1 // 管理员
	RoleLeader int8 = 2 // 组长
)

// 用户状态 status
const (
	UserPending     int8 = 0 // 待审核
	UserApproved    int8 = 1 // 审核通过
	UserRejected    int8 = 2 // 审核不通过
	UserBlacklisted int8 = 3 // 拉黑
)

// 借阅 / 荐购申请状态，只允许 0->1 或 0->2
const (
	ApplyPending  int8 = 0 // 待审核
	ApplyApproved int8 = 1 // 通过
	ApplyRejected int8 = 2 // 驳回
)

// ValidUserStatus 用户状态是否合法
func ValidUserStatus(s int8) bool {
	return s >= UserPending && s <= UserBlacklisted
}

// ValidApplyStatus 申请状态是否合法
func ValidApplyStatus(s int8) bool {
	return s >= ApplyPending && s <= ApplyRejected
}
