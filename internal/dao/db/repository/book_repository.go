package repository

import (
	"library_server/internal/model"
	"library_server/pkg/pagination"

	"gorm.io/gorm"
)

type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书 Repository
func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

// FindByID 查询图书并带出分类
func (r *bookRepository) FindByID(id uint) (*model.Book, error) {
	var b model.Book
	if err := r.db.Preload("Category").First(&b, "id = ?", id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询图书 id=%d", id)
	}
	return &b, nil
}

func (r *bookRepository) List(p pagination.Params) ([]model.Book, int64, error) {
	books, total, err := paginate[model.Book](r.db, noScope, "id ASC", p, "Category")
	if err != nil {
		return nil, 0, wrapDBError(err, "分页查询图书")
	}
	return books, total, nil
}

func (r *bookRepository) ListByCategory(cateID uint, p pagination.Params) ([]model.Book, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		return db.Where("cate_id = ?", cateID)
	}
	books, total, err := paginate[model.Book](r.db, scope, "id ASC", p, "Category")
	if err != nil {
		return nil, 0, wrapDBErrorf(err, "分页查询分类图书 cate=%d", cateID)
	}
	return books, total, nil
}

func (r *bookRepository) Create(b *model.Book) error {
	if err := r.db.Omit("Category").Create(b).Error; err != nil {
		return wrapDBError(err, "创建图书")
	}
	return nil
}

func (r *bookRepository) Update(b *model.Book) error {
	if err := r.db.Omit("Category").Save(b).Error; err != nil {
		return wrapDBErrorf(err, "更新图书 id=%d", b.ID)
	}
	return nil
}

// Delete 物理删除
func (r *bookRepository) Delete(id uint) error {
	res := r.db.Delete(&model.Book{}, id)
	if res.Error != nil {
		return wrapDBErrorf(res.Error, "删除图书 id=%d", id)
	}
	if res.RowsAffected == 0 {
		return wrapDBErrorf(gorm.ErrRecordNotFound, "删除图书 id=%d", id)
	}
	return nil
}
