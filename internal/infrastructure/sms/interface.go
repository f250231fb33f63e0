// Package sms 提供短信验证码服务
// 本文件定义短信服务接口，Service 层依赖此接口而非具体实现
package sms

import "context"

// SmsService 短信服务接口
// 抽象短信发送操作，支持阿里云和本地 mock 两种实现
type SmsService interface {
	// SendVerificationCode 生成验证码、写入缓存并下发
	// 有效期内重复请求返回 CodeInvalidParam
	SendVerificationCode(ctx context.Context, telephone string) error
	// VerifyCode 校验验证码，校验成功后验证码作废
	VerifyCode(ctx context.Context, telephone, code string) (bool, error)
}

var (
	_ SmsService = (*aliyunSmsService)(nil)
	_ SmsService = (*localSmsService)(nil)
)
