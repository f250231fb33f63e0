package repository

import (
	"library_server/internal/model"
	"library_server/pkg/pagination"

	"gorm.io/gorm"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类 Repository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) FindByID(id uint) (*model.Category, error) {
	var c model.Category
	if err := r.db.First(&c, "id = ?", id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询分类 id=%d", id)
	}
	return &c, nil
}

func (r *categoryRepository) FindByName(name string) (*model.Category, error) {
	var c model.Category
	if err := r.db.First(&c, "name = ?", name).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询分类 name=%s", name)
	}
	return &c, nil
}

func (r *categoryRepository) List(p pagination.Params) ([]model.Category, int64, error) {
	list, total, err := paginate[model.Category](r.db, noScope, "id ASC", p)
	if err != nil {
		return nil, 0, wrapDBError(err, "分页查询分类")
	}
	return list, total, nil
}

func (r *categoryRepository) Create(c *model.Category) error {
	if err := r.db.Create(c).Error; err != nil {
		return wrapDBErrorf(err, "创建分类 name=%s", c.Name)
	}
	return nil
}
