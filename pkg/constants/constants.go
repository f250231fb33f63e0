package constants

import "time"

const (
	AuthCodeTTL        = time.Minute   // 短信验证码有效期，同时作为重发间隔
	AuthCodeKeyPrefix  = "auth_code_"  // 短信验证码缓存 key 前缀
	AuthCodeFailPrefix = "auth_fail_"  // 验证码输错次数 key 前缀
	MaxAuthCodeFails   = 5             // 输错达到该次数后验证码作废
	UserTokenKeyPrefix = "user_token:" // Refresh Token ID 缓存 key 前缀，后接 role:id
	DefaultAvatar      = "https://cube.elemecdn.com/0/88/03b0d39583f48206768a7534e55bcpng.png"
	OplogTopic         = "library_oplog" // Kafka 审计主题默认值
)
