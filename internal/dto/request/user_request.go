package request

// RegisterRequest 用户注册请求
// 不写 binding:"required"，缺字段统一返回一条提示，由 service 判断
type RegisterRequest struct {
	Truename string `json:"truename" form:"truename"`
	Phone    string `json:"phone" form:"phone"`
	Password string `json:"password" form:"password"`
}

// UpdateUserRequest 用户资料局部更新
// 指针字段为 nil 表示请求里没带，保留原值
type UpdateUserRequest struct {
	Nickname *string `json:"nickname"`
	Truename *string `json:"truename" binding:"omitempty,min=1,max=100"`
	Username *string `json:"username" binding:"omitempty,min=1,max=100"`
	Email    *string `json:"email" binding:"omitempty,email,max=120"`
	Avatar   *string `json:"avatar" binding:"omitempty,max=200"`
	Openid   *string `json:"openid" binding:"omitempty,max=50"`
	Phone    *string `json:"phone" binding:"omitempty,phone"`
	Password *string `json:"password" binding:"omitempty,min=1"`
}
