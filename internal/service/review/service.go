// Package review 书评
package review

import (
	"strings"

	"library_server/internal/dao/db/repository"
	"library_server/internal/dto/request"
	"library_server/internal/model"
	"library_server/pkg/errorx"
	"library_server/pkg/pagination"
)

// 评分范围，数据库 CHECK 约束同样限制
const (
	MinScore = 1
	MaxScore = 10
)

type Service struct {
	repos *repository.Repositories
}

func NewReviewService(repos *repository.Repositories) *Service {
	return &Service{repos: repos}
}

// Create 对 bookID 发表书评
func (s *Service) Create(actor request.Actor, bookID uint, req request.CreateReviewRequest) (*model.Review, error) {
	if !actor.IsUser() {
		return nil, errorx.New(errorx.CodeForbidden, "只有读者可以发表书评")
	}
	if req.Score < MinScore || req.Score > MaxScore {
		return nil, errorx.Newf(errorx.CodeInvalidParam, "评分必须在 %d 到 %d 之间", MinScore, MaxScore)
	}

	rv := &model.Review{UserID: actor.ID, BookID: bookID, Score: req.Score, Content: strings.TrimSpace(req.Content)}
	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		if _, err := tx.User.FindByID(actor.ID); err != nil {
			return errorx.OnNotFound(err, "用户不存在")
		}
		if _, err := tx.Book.FindByID(bookID); err != nil {
			return errorx.OnNotFound(err, "图书不存在")
		}
		return tx.Review.Create(rv)
	})
	if err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *Service) ListByBook(bookID uint, p pagination.Params, ep pagination.Endpoint) (*pagination.Page[model.Review], error) {
	if _, err := s.repos.Book.FindByID(bookID); err != nil {
		return nil, errorx.OnNotFound(err, "图书不存在")
	}
	items, total, err := s.repos.Review.ListByBook(bookID, p)
	if err != nil {
		return nil, err
	}
	return pagination.New(items, p, total, ep), nil
}

func (s *Service) ListByUser(userID uint, p pagination.Params, ep pagination.Endpoint) (*pagination.Page[model.Review], error) {
	if _, err := s.repos.User.FindByID(userID); err != nil {
		return nil, errorx.OnNotFound(err, "用户不存在")
	}
	items, total, err := s.repos.Review.ListByUser(userID, p)
	if err != nil {
		return nil, err
	}
	return pagination.New(items, p, total, ep), nil
}
