// Package catalog 图书与分类
package catalog

import (
	"strings"

	"library_server/internal/dao/db/repository"
	"library_server/internal/dto/request"
	"library_server/internal/infrastructure/mq"
	"library_server/internal/model"
	"library_server/internal/service/audit"
	"library_server/pkg/errorx"
	"library_server/pkg/pagination"
)

const (
	msgBookNotFound     = "图书不存在"
	msgCategoryNotFound = "分类不存在"
)

type Service struct {
	repos *repository.Repositories
	audit *audit.Recorder
}

func NewCatalogService(repos *repository.Repositories, recorder *audit.Recorder) *Service {
	return &Service{repos: repos, audit: recorder}
}

func (s *Service) ListCategories(p pagination.Params, ep pagination.Endpoint) (*pagination.Page[model.Category], error) {
	cats, total, err := s.repos.Category.List(p)
	if err != nil {
		return nil, err
	}
	return pagination.New(cats, p, total, ep), nil
}

// CreateCategory 分类名唯一，重复时提示"该分类已存在"
func (s *Service) CreateCategory(actor request.Actor, req request.CreateCategoryRequest) (*model.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errorx.New(errorx.CodeInvalidParam, "分类名不能为空")
	}

	cat := &model.Category{Name: name}
	var ev mq.OplogEvent
	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		if _, err := tx.Category.FindByName(name); err == nil {
			return errorx.New(errorx.CodeDuplicate, "该分类已存在")
		} else if !errorx.IsNotFound(err) {
			return err
		}
		if err := tx.Category.Create(cat); err != nil {
			if errorx.IsDuplicate(err) {
				return errorx.Wrap(err, errorx.CodeDuplicate, "该分类已存在")
			}
			return err
		}
		var err error
		ev, err = s.audit.Append(tx, actor, audit.ActionCategoryCreate, cat.ID, req.Reason)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.audit.Publish(ev)
	return cat, nil
}

func (s *Service) ListBooks(p pagination.Params, ep pagination.Endpoint) (*pagination.Page[model.Book], error) {
	books, total, err := s.repos.Book.List(p)
	if err != nil {
		return nil, err
	}
	return pagination.New(books, p, total, ep), nil
}

// ListBooksByCategory 分类不存在时直接返回 NotFound，不做分页
func (s *Service) ListBooksByCategory(cateID uint, p pagination.Params, ep pagination.Endpoint) (*pagination.Page[model.Book], error) {
	if _, err := s.repos.Category.FindByID(cateID); err != nil {
		return nil, errorx.OnNotFound(err, msgCategoryNotFound)
	}
	books, total, err := s.repos.Book.ListByCategory(cateID, p)
	if err != nil {
		return nil, err
	}
	return pagination.New(books, p, total, ep), nil
}

func (s *Service) GetBook(id uint) (*model.Book, error) {
	book, err := s.repos.Book.FindByID(id)
	if err != nil {
		return nil, errorx.OnNotFound(err, msgBookNotFound)
	}
	return book, nil
}

// CreateBook cate_id 必须指向已存在的分类
func (s *Service) CreateBook(actor request.Actor, req request.CreateBookRequest) (*model.Book, error) {
	book := &model.Book{
		Isbn:     strings.TrimSpace(req.Isbn),
		Title:    strings.TrimSpace(req.Title),
		Author:   req.Author,
		ImageURL: req.ImageURL,
		CateID:   req.CateID,
	}
	if book.Title == "" {
		return nil, errorx.New(errorx.CodeInvalidParam, "书名不能为空")
	}

	var ev mq.OplogEvent
	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		cat, err := tx.Category.FindByID(book.CateID)
		if err != nil {
			return errorx.OnNotFound(err, msgCategoryNotFound)
		}
		if err := tx.Book.Create(book); err != nil {
			return err
		}
		book.Category = cat
		ev, err = s.audit.Append(tx, actor, audit.ActionBookCreate, book.ID, req.Reason)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.audit.Publish(ev)
	return book, nil
}

// UpdateBook 只修改请求里带了的字段
func (s *Service) UpdateBook(actor request.Actor, id uint, req request.UpdateBookRequest) (*model.Book, error) {
	var (
		book *model.Book
		ev   mq.OplogEvent
	)
	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		b, err := tx.Book.FindByID(id)
		if err != nil {
			return errorx.OnNotFound(err, msgBookNotFound)
		}
		if req.CateID != nil && *req.CateID != b.CateID {
			cat, err := tx.Category.FindByID(*req.CateID)
			if err != nil {
				return errorx.OnNotFound(err, msgCategoryNotFound)
			}
			b.CateID = cat.ID
			b.Category = cat
		}
		if req.Isbn != nil {
			b.Isbn = strings.TrimSpace(*req.Isbn)
		}
		if req.Title != nil {
			b.Title = strings.TrimSpace(*req.Title)
		}
		if req.Author != nil {
			b.Author = *req.Author
		}
		if req.ImageURL != nil {
			b.ImageURL = *req.ImageURL
		}
		if b.Title == "" {
			return errorx.New(errorx.CodeInvalidParam, "书名不能为空")
		}
		if err := tx.Book.Update(b); err != nil {
			return err
		}
		book = b
		ev, err = s.audit.Append(tx, actor, audit.ActionBookUpdate, b.ID, req.Reason)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.audit.Publish(ev)
	return book, nil
}

// DeleteBook 物理删除；没有级联，仍有借阅或书评时拒绝
func (s *Service) DeleteBook(actor request.Actor, id uint, reason string) error {
	var ev mq.OplogEvent
	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		if _, err := tx.Book.FindByID(id); err != nil {
			return errorx.OnNotFound(err, msgBookNotFound)
		}
		borrows, err := tx.Borrow.CountByBook(id)
		if err != nil {
			return err
		}
		reviews, err := tx.Review.CountByBook(id)
		if err != nil {
			return err
		}
		if borrows > 0 || reviews > 0 {
			return errorx.New(errorx.CodeConflict, "该图书存在借阅或书评记录，不能删除")
		}
		if err := tx.Book.Delete(id); err != nil {
			return err
		}
		ev, err = s.audit.Append(tx, actor, audit.ActionBookDelete, id, reason)
		return err
	})
	if err != nil {
		return err
	}
	s.audit.Publish(ev)
	return nil
}
