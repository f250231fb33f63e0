package repository

import (
	"library_server/internal/model"
	"library_server/pkg/pagination"

	"gorm.io/gorm"
)

type borrowRepository struct {
	db *gorm.DB
}

// NewBorrowRepository 创建借阅 Repository
func NewBorrowRepository(db *gorm.DB) BorrowRepository {
	return &borrowRepository{db: db}
}

func (r *borrowRepository) FindByID(id uint) (*model.BorrowInfo, error) {
	var b model.BorrowInfo
	if err := r.db.First(&b, "id = ?", id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询借阅 id=%d", id)
	}
	return &b, nil
}

func (r *borrowRepository) Create(b *model.BorrowInfo) error {
	if err := r.db.Create(b).Error; err != nil {
		return wrapDBError(err, "创建借阅申请")
	}
	return nil
}

func (r *borrowRepository) ListByUser(userID uint, p pagination.Params) ([]model.BorrowInfo, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB { return db.Where("user_id = ?", userID) }
	list, total, err := paginate[model.BorrowInfo](r.db, scope, "id DESC", p)
	if err != nil {
		return nil, 0, wrapDBErrorf(err, "查询用户借阅 user=%d", userID)
	}
	return list, total, nil
}

func (r *borrowRepository) ListByStatus(status *int8, p pagination.Params) ([]model.BorrowInfo, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		if status != nil {
			return db.Where("status = ?", *status)
		}
		return db
	}
	list, total, err := paginate[model.BorrowInfo](r.db, scope, "id ASC", p)
	if err != nil {
		return nil, 0, wrapDBError(err, "分页查询借阅")
	}
	return list, total, nil
}

func (r *borrowRepository) Transition(id uint, from, to int8) error {
	return transition[model.BorrowInfo](r.db, id, from, to, "借阅申请")
}

func (r *borrowRepository) CountByBook(bookID uint) (int64, error) {
	var n int64
	if err := r.db.Model(&model.BorrowInfo{}).Where("book_id = ?", bookID).Count(&n).Error; err != nil {
		return 0, wrapDBError(err, "统计借阅")
	}
	return n, nil
}
