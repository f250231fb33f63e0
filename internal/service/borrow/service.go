// Package borrow 借阅申请与审批
package borrow

import (
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

func NewBorrowService(repos *repository.Repositories, recorder *audit.Recorder) *Service {
	return &Service{repos: repos, audit: recorder}
}

// Create 只有审核通过的用户可以借阅，新申请状态为待审核
func (s *Service) Create(actor request.Actor, req request.CreateBorrowRequest) (*model.BorrowInfo, error) {
	if !actor.IsUser() {
		return nil, errorx.New(errorx.CodeForbidden, "只有读者可以申请借阅")
	}
	info := &model.BorrowInfo{UserID: actor.ID, BookID: req.BookID, Status: enum.ApplyPending}
	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := requireApproved(tx, actor.ID); err != nil {
			return err
		}
		if _, err := tx.Book.FindByID(req.BookID); err != nil {
			return errorx.OnNotFound(err, "图书不存在")
		}
		return tx.Borrow.Create(info)
	})
	if err != nil {
		return nil, err
	}
	return info, nil
}

// requireApproved 用户存在且审核通过
func requireApproved(tx *repository.Repositories, userID uint) error {
	user, err := tx.User.FindByID(userID)
	if err != nil {
		return errorx.OnNotFound(err, "用户不存在")
	}
	if user.Status != enum.UserApproved {
		return errorx.New(errorx.CodeForbidden, "账号尚未审核通过")
	}
	return nil
}

// List 管理员按状态查看，status 为 nil 时列出全部
func (s *Service) List(status *int8, p pagination.Params, ep pagination.Endpoint) (*pagination.Page[model.BorrowInfo], error) {
	if status != nil && !enum.ValidApplyStatus(*status) {
		return nil, errorx.Newf(errorx.CodeInvalidParam, "非法的申请状态 %d", *status)
	}
	items, total, err := s.repos.Borrow.ListByStatus(status, p)
	if err != nil {
		return nil, err
	}
	return pagination.New(items, p, total, ep), nil
}

// ListByUser 本人或管理员查看某用户的借阅记录
func (s *Service) ListByUser(actor request.Actor, userID uint, p pagination.Params, ep pagination.Endpoint) (*pagination.Page[model.BorrowInfo], error) {
	if !actor.IsAdmin() && !actor.Is(userID) {
		return nil, errorx.ErrForbidden
	}
	if _, err := s.repos.User.FindByID(userID); err != nil {
		return nil, errorx.OnNotFound(err, "用户不存在")
	}
	items, total, err := s.repos.Borrow.ListByUser(userID, p)
	if err != nil {
		return nil, err
	}
	return pagination.New(items, p, total, ep), nil
}

func (s *Service) Approve(actor request.Actor, id uint, reason string) (*model.BorrowInfo, error) {
	return s.decide(actor, id, enum.ApplyApproved, audit.ActionBorrowApprove, reason)
}

func (s *Service) Reject(actor request.Actor, id uint, reason string) (*model.BorrowInfo, error) {
	return s.decide(actor, id, enum.ApplyRejected, audit.ActionBorrowReject, reason)
}

// decide 只允许 待审核 -> 通过/驳回
func (s *Service) decide(actor request.Actor, id uint, to int8, action, reason string) (*model.BorrowInfo, error) {
	var (
		info *model.BorrowInfo
		ev   mq.OplogEvent
	)
	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Borrow.Transition(id, enum.ApplyPending, to); err != nil {
			return err
		}
		var err error
		if info, err = tx.Borrow.FindByID(id); err != nil {
			return err
		}
		ev, err = s.audit.Append(tx, actor, action, id, reason)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.audit.Publish(ev)
	return info, nil
}
