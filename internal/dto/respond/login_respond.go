package respond

// LoginRespond 用户登录响应
// 使用位置:
//   - internal/service/auth: Login, SmsLogin
type LoginRespond struct {
	User         UserRespond `json:"user"`
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
}

// AdminLoginRespond 管理员登录响应，后台不提供 Refresh Token
type AdminLoginRespond struct {
	AdminID     uint   `json:"admin_id"`
	Name        string `json:"name"`
	AccessToken string `json:"access_token"`
}

// RefreshRespond 刷新后的 Access Token
type RefreshRespond struct {
	AccessToken string `json:"access_token"`
}
