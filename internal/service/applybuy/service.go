// Package applybuy 荐购申请，由组长审批
package applybuy

import (
	"strings"

	"library_server/internal/dao/db/repository"
	"library_server/internal/dto/request"
	"library_server/internal/infrastructure/mq"
	"library_server/internal/model"
	"library_server/internal/service/audit"
	"library_server/pkg/enum"
	"library_server/pkg/errorx"
	"library_server/pkg/pagination"
)

type Service struct {
	repos *repository.Repositories
	audit *audit.Recorder
}

func NewApplyBuyService(repos *repository.Repositories, recorder *audit.Recorder) *Service {
	return &Service{repos: repos, audit: recorder}
}

// Create leader_id 必须是组长
func (s *Service) Create(actor request.Actor, req request.CreateApplyBuyRequest) (*model.ApplyBuy, error) {
	if !actor.IsUser() {
		return nil, errorx.New(errorx.CodeForbidden, "只有读者可以提交荐购")
	}
	apply := &model.ApplyBuy{
		Isbn:     strings.TrimSpace(req.Isbn),
		Title:    strings.TrimSpace(req.Title),
		UserID:   actor.ID,
		LeaderID: req.LeaderID,
		Reason:   req.Reason,
		Status:   enum.ApplyPending,
	}
	if apply.Title == "" {
		return nil, errorx.New(errorx.CodeInvalidParam, "书名不能为空")
	}

	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		user, err := tx.User.FindByID(actor.ID)
		if err != nil {
			return errorx.OnNotFound(err, "用户不存在")
		}
		if user.Status != enum.UserApproved {
			return errorx.New(errorx.CodeForbidden, "账号尚未审核通过")
		}
		leader, err := tx.User.FindByID(req.LeaderID)
		if err != nil {
			return errorx.OnNotFound(err, "组长不存在")
		}
		if leader.RoleID != enum.RoleLeader {
			return errorx.New(errorx.CodeInvalidParam, "leader_id 对应的用户不是组长")
		}
		return tx.ApplyBuy.Create(apply)
	})
	if err != nil {
		return nil, err
	}
	return apply, nil
}

// List 管理员看全部，组长看提交给自己的，普通职工看自己的
func (s *Service) List(actor request.Actor, status *int8, p pagination.Params, ep pagination.Endpoint) (*pagination.Page[model.ApplyBuy], error) {
	if status != nil && !enum.ValidApplyStatus(*status) {
		return nil, errorx.Newf(errorx.CodeInvalidParam, "非法的申请状态 %d", *status)
	}
	filter := repository.ApplyBuyFilter{Status: status}
	if !actor.IsAdmin() {
		user, err := s.repos.User.FindByID(actor.ID)
		if err != nil {
			return nil, errorx.OnNotFound(err, "用户不存在")
		}
		if user.RoleID == enum.RoleLeader {
			filter.LeaderID = user.ID
		} else {
			filter.UserID = user.ID
		}
	}
	items, total, err := s.repos.ApplyBuy.List(filter, p)
	if err != nil {
		return nil, err
	}
	return pagination.New(items, p, total, ep), nil
}

func (s *Service) Approve(actor request.Actor, id uint, reason string) (*model.ApplyBuy, error) {
	return s.decide(actor, id, enum.ApplyApproved, audit.ActionApplyApprove, reason)
}

func (s *Service) Reject(actor request.Actor, id uint, reason string) (*model.ApplyBuy, error) {
	return s.decide(actor, id, enum.ApplyRejected, audit.ActionApplyReject, reason)
}

// decide 只有被指定的组长或管理员可以审批；管理员审批会写 oplog
func (s *Service) decide(actor request.Actor, id uint, to int8, action, reason string) (*model.ApplyBuy, error) {
	var (
		apply *model.ApplyBuy
		ev    *mq.OplogEvent
	)
	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		a, err := tx.ApplyBuy.FindByID(id)
		if err != nil {
			return errorx.OnNotFound(err, "荐购申请不存在")
		}
		if !actor.IsAdmin() && !actor.Is(a.LeaderID) {
			return errorx.ErrForbidden
		}
		if err := tx.ApplyBuy.Transition(id, enum.ApplyPending, to); err != nil {
			return err
		}
		a.Status = to
		apply = a

		if actor.IsAdmin() {
			e, err := s.audit.Append(tx, actor, action, id, reason)
			if err != nil {
				return err
			}
			ev = &e
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if ev != nil {
		s.audit.Publish(*ev)
	}
	return apply, nil
}
