package repository

import (
	"library_server/internal/model"
	"library_server/pkg/pagination"

	"gorm.io/gorm"
)

type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository 创建管理员 Repository
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) FindByID(id uint) (*model.Admin, error) {
	var a model.Admin
	if err := r.db.First(&a, "id = ?", id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询管理员 id=%d", id)
	}
	return &a, nil
}

func (r *adminRepository) FindByName(name string) (*model.Admin, error) {
	var a model.Admin
	if err := r.db.First(&a, "name = ?", name).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询管理员 name=%s", name)
	}
	return &a, nil
}

func (r *adminRepository) Create(a *model.Admin) error {
	if err := r.db.Create(a).Error; err != nil {
		return wrapDBErrorf(err, "创建管理员 name=%s", a.Name)
	}
	return nil
}

// ==================== 日志（只追加） ====================

type adminlogRepository struct {
	db *gorm.DB
}

// NewAdminlogRepository 创建登录日志 Repository
func NewAdminlogRepository(db *gorm.DB) AdminlogRepository {
	return &adminlogRepository{db: db}
}

func (r *adminlogRepository) Create(l *model.Adminlog) error {
	if err := r.db.Create(l).Error; err != nil {
		return wrapDBError(err, "写入管理员登录日志")
	}
	return nil
}

// List 最新的在前
func (r *adminlogRepository) List(p pagination.Params) ([]model.Adminlog, int64, error) {
	logs, total, err := paginate[model.Adminlog](r.db, noScope, "id DESC", p)
	if err != nil {
		return nil, 0, wrapDBError(err, "分页查询登录日志")
	}
	return logs, total, nil
}

func (r *adminlogRepository) CountByAdmin(adminID uint) (int64, error) {
	var n int64
	if err := r.db.Model(&model.Adminlog{}).Where("admin_id = ?", adminID).Count(&n).Error; err != nil {
		return 0, wrapDBError(err, "统计登录日志")
	}
	return n, nil
}

type oplogRepository struct {
	db *gorm.DB
}

// NewOplogRepository 创建操作日志 Repository
func NewOplogRepository(db *gorm.DB) OplogRepository {
	return &oplogRepository{db: db}
}

func (r *oplogRepository) Create(l *model.Oplog) error {
	if err := r.db.Create(l).Error; err != nil {
		return wrapDBError(err, "写入操作日志")
	}
	return nil
}

func (r *oplogRepository) List(p pagination.Params) ([]model.Oplog, int64, error) {
	logs, total, err := paginate[model.Oplog](r.db, noScope, "id DESC", p)
	if err != nil {
		return nil, 0, wrapDBError(err, "分页查询操作日志")
	}
	return logs, total, nil
}
