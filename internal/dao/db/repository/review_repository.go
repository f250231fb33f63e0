package repository

import (
	"library_server/internal/model"
	"library_server/pkg/pagination"

	"gorm.io/gorm"
)

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建书评 Repository
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(rv *model.Review) error {
	if err := r.db.Create(rv).Error; err != nil {
		return wrapDBError(err, "创建书评")
	}
	return nil
}

func (r *reviewRepository) ListByBook(bookID uint, p pagination.Params) ([]model.Review, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB { return db.Where("book_id = ?", bookID) }
	list, total, err := paginate[model.Review](r.db, scope, "id DESC", p)
	if err != nil {
		return nil, 0, wrapDBErrorf(err, "查询书评 book=%d", bookID)
	}
	return list, total, nil
}

func (r *reviewRepository) ListByUser(userID uint, p pagination.Params) ([]model.Review, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB { return db.Where("user_id = ?", userID) }
	list, total, err := paginate[model.Review](r.db, scope, "id DESC", p)
	if err != nil {
		return nil, 0, wrapDBErrorf(err, "查询书评 user=%d", userID)
	}
	return list, total, nil
}

func (r *reviewRepository) CountByBook(bookID uint) (int64, error) {
	var n int64
	if err := r.db.Model(&model.Review{}).Where("book_id = ?", bookID).Count(&n).Error; err != nil {
		return 0, wrapDBError(err, "统计书评")
	}
	return n, nil
}
