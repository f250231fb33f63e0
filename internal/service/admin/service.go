// Package admin 后台管理员登录、日志查询和用户审核
package admin

import (
	"fmt"

	"go.uber.org/zap"

	"library_server/internal/dao/db/repository"
	"library_server/internal/dto/request"
	"library_server/internal/dto/respond"
	"library_server/internal/infrastructure/mq"
	"library_server/internal/model"
	"library_server/internal/service/audit"
	"library_server/pkg/enum"
	"library_server/pkg/errorx"
	"library_server/pkg/pagination"
	"library_server/pkg/util/jwt"
)

type Service struct {
	repos *repository.Repositories
	audit *audit.Recorder
}

func NewAdminService(repos *repository.Repositories, recorder *audit.Recorder) *Service {
	return &Service{repos: repos, audit: recorder}
}

var errBadCredential = errorx.New(errorx.CodeInvalidPassword, "管理员账号或密码错误")

// Login 校验哈希密码，成功时在同一事务里追加一条 adminlog
func (s *Service) Login(req request.AdminLoginRequest, ip string) (*respond.AdminLoginRespond, error) {
	var admin *model.Admin
	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		a, err := tx.Admin.FindByName(req.Name)
		if err != nil {
			if errorx.IsNotFound(err) {
				return errBadCredential
			}
			return err
		}
		if !a.CheckPwd(req.Pwd) {
			return errBadCredential
		}
		admin = a
		return tx.Adminlog.Create(&model.Adminlog{AdminID: a.ID, IP: ip})
	})
	if err != nil {
		return nil, err
	}

	token, err := jwt.GenerateAccessToken(admin.ID, jwt.RoleAdmin)
	if err != nil {
		zap.L().Error("生成管理员 Access Token 失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	zap.L().Info("admin login", zap.Uint("admin_id", admin.ID), zap.String("ip", ip))
	return &respond.AdminLoginRespond{AdminID: admin.ID, Name: admin.Name, AccessToken: token}, nil
}

func (s *Service) ListAdminlogs(p pagination.Params, ep pagination.Endpoint) (*pagination.Page[model.Adminlog], error) {
	logs, total, err := s.repos.Adminlog.List(p)
	if err != nil {
		return nil, err
	}
	return pagination.New(logs, p, total, ep), nil
}

func (s *Service) ListOplogs(p pagination.Params, ep pagination.Endpoint) (*pagination.Page[model.Oplog], error) {
	logs, total, err := s.repos.Oplog.List(p)
	if err != nil {
		return nil, err
	}
	return pagination.New(logs, p, total, ep), nil
}

// SetUserStatus 审核或拉黑用户，写 oplog 后投递审计事件
func (s *Service) SetUserStatus(actor request.Actor, userID uint, status int8, reason string) (*respond.UserRespond, error) {
	if !enum.ValidUserStatus(status) {
		return nil, errorx.Newf(errorx.CodeInvalidParam, "非法的用户状态 %d", status)
	}

	var (
		user model.User
		ev   mq.OplogEvent
	)
	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		u, err := tx.User.FindByID(userID)
		if err != nil {
			return errorx.OnNotFound(err, "用户不存在")
		}
		if u.Status != status {
			if err := tx.User.UpdateStatus(u.ID, status); err != nil {
				return err
			}
			u.Status = status
		}
		user = *u

		if reason == "" {
			reason = fmt.Sprintf("status -> %d", status)
		}
		ev, err = s.audit.Append(tx, actor, audit.ActionUserStatus, u.ID, reason)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.audit.Publish(ev)

	rsp := respond.NewUserRespond(user)
	return &rsp, nil
}
