package sms

import (
	"context"
	"strings"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dysmsapi20170525 "github.com/alibabacloud-go/dysmsapi-20170525/v4/client"
	util "github.com/alibabacloud-go/tea-utils/v2/service"
	"github.com/alibabacloud-go/tea/tea"
	"go.uber.org/zap"

	"library_server/internal/config"
	myredis "library_server/internal/dao/redis"
	"library_server/pkg/errorx"
)

// localSmsService 本地 mock，验证码只写缓存并打日志
type localSmsService struct {
	codeStore
}

func (s *localSmsService) SendVerificationCode(ctx context.Context, telephone string) error {
	code, err := s.reserve(ctx, telephone)
	if err != nil {
		return err
	}
	zap.L().Info("MockSMS 验证码", zap.String("phone", telephone), zap.String("code", code))
	return nil
}

// aliyunSmsService 阿里云短信服务实现
type aliyunSmsService struct {
	codeStore
	client       *dysmsapi20170525.Client
	signName     string
	templateCode string
}

// NewLocalSmsService 创建本地 mock 实现
func NewLocalSmsService(cache myredis.CacheService) SmsService {
	return &localSmsService{codeStore: codeStore{cache: cache}}
}

func shouldUseMock(auth config.AuthCodeConfig) bool {
	mode := strings.ToLower(strings.TrimSpace(auth.Mode))
	if mode == "mock" || mode == "local" || mode == "test" {
		return true
	}
	// 没配真实 AK 时默认走 mock，便于本机跑通短信登录链路
	ak := strings.ToLower(strings.TrimSpace(auth.AccessKeyID))
	ask := strings.ToLower(strings.TrimSpace(auth.AccessKeySecret))
	if ak == "" || ask == "" {
		return true
	}
	return strings.Contains(ak, "your accesskey") || strings.Contains(ask, "your accesskey")
}

// Init 根据配置创建短信服务实例
func Init(authCfg config.AuthCodeConfig, cacheService myredis.CacheService) (SmsService, error) {
	if shouldUseMock(authCfg) {
		zap.L().Warn("SMS Service 使用本地 Mock 模式（仅写入缓存，不调用第三方短信）")
		return NewLocalSmsService(cacheService), nil
	}

	conf := &openapi.Config{
		AccessKeyId:     tea.String(authCfg.AccessKeyID),
		AccessKeySecret: tea.String(authCfg.AccessKeySecret),
	}
	conf.Endpoint = tea.String("dysmsapi.aliyuncs.com")
	client, err := dysmsapi20170525.NewClient(conf)
	if err != nil {
		zap.L().Error("Aliyun SMS Client Init Failed", zap.Error(err))
		return nil, err
	}

	signName := authCfg.SignName
	if signName == "" {
		signName = "阿里云短信测试"
	}
	templateCode := authCfg.TemplateCode
	if templateCode == "" {
		templateCode = "SMS_154950909"
	}
	return &aliyunSmsService{
		codeStore:    codeStore{cache: cacheService},
		client:       client,
		signName:     signName,
		templateCode: templateCode,
	}, nil
}

// SendVerificationCode 频率限制、生成验证码、缓存预存、调用阿里云，失败时回滚占位
func (s *aliyunSmsService) SendVerificationCode(ctx context.Context, telephone string) error {
	if s.client == nil {
		zap.L().Error("短信服务调用失败：smsClient 未初始化")
		return errorx.New(errorx.CodeServerBusy, "短信服务未初始化")
	}

	code, err := s.reserve(ctx, telephone)
	if err != nil {
		return err
	}

	req := &dysmsapi20170525.SendSmsRequest{
		SignName:      tea.String(s.signName),
		TemplateCode:  tea.String(s.templateCode),
		PhoneNumbers:  tea.String(telephone),
		TemplateParam: tea.String("{\"code\":\"" + code + "\"}"),
	}
	rsp, err := s.client.SendSmsWithOptions(req, &util.RuntimeOptions{})
	if err != nil {
		zap.L().Error("调用阿里云短信接口发生系统级错误", zap.Error(err))
		s.release(ctx, telephone)
		return errorx.ErrServerBusy
	}

	// err 为 nil 时仍需看 Body.Code 是否为 OK
	if rsp.Body != nil && tea.StringValue(rsp.Body.Code) != "OK" {
		zap.L().Error("阿里云短信发送失败", zap.String("response", tea.StringValue(util.ToJSONString(rsp))))
		s.release(ctx, telephone)
		return errorx.ErrServerBusy
	}
	zap.L().Info("短信发送接口响应", zap.String("response", tea.StringValue(util.ToJSONString(rsp))))
	return nil
}
