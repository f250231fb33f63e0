package request

// LoginRequest 手机号密码登录
type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SendSmsCodeRequest 发送短信验证码
type SendSmsCodeRequest struct {
	Phone string `json:"phone" binding:"required,phone"`
}

// SmsLoginRequest 短信验证码登录
type SmsLoginRequest struct {
	Phone string `json:"phone" binding:"required,phone"`
	Code  string `json:"code" binding:"required,len=6,numeric"`
}

// RefreshTokenRequest 刷新 Access Token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// AdminLoginRequest 管理员登录
type AdminLoginRequest struct {
	Name string `json:"name" binding:"required"`
	Pwd  string `json:"pwd" binding:"required"`
}
