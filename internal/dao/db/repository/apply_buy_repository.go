package repository

import (
	"library_server/internal/model"
	"library_server/pkg/pagination"

	"gorm.io/gorm"
)

type applyBuyRepository struct {
	db *gorm.DB
}

// NewApplyBuyRepository 创建荐购 Repository
func NewApplyBuyRepository(db *gorm.DB) ApplyBuyRepository {
	return &applyBuyRepository{db: db}
}

func (r *applyBuyRepository) FindByID(id uint) (*model.ApplyBuy, error) {
	var a model.ApplyBuy
	if err := r.db.First(&a, "id = ?", id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询荐购 id=%d", id)
	}
	return &a, nil
}

func (r *applyBuyRepository) Create(a *model.ApplyBuy) error {
	if err := r.db.Create(a).Error; err != nil {
		return wrapDBError(err, "创建荐购申请")
	}
	return nil
}

// List 按过滤条件分页
func (r *applyBuyRepository) List(f ApplyBuyFilter, p pagination.Params) ([]model.ApplyBuy, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		if f.UserID != 0 {
			db = db.Where("user_id = ?", f.UserID)
		}
		if f.LeaderID != 0 {
			db = db.Where("leader_id = ?", f.LeaderID)
		}
		if f.Status != nil {
			db = db.Where("status = ?", *f.Status)
		}
		return db
	}
	list, total, err := paginate[model.ApplyBuy](r.db, scope, "id ASC", p)
	if err != nil {
		return nil, 0, wrapDBError(err, "分页查询荐购")
	}
	return list, total, nil
}

func (r *applyBuyRepository) Transition(id uint, from, to int8) error {
	return transition[model.ApplyBuy](r.db, id, from, to, "荐购申请")
}
