package repository

import (
	"library_server/internal/model"
	"library_server/pkg/pagination"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户 Repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// FindByID 按主键查找用户
func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户 id=%d", id)
	}
	return &user, nil
}

// FindByTruename 按真实姓名查找用户
func (r *userRepository) FindByTruename(truename string) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, "truename = ?", truename).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户 truename=%s", truename)
	}
	return &user, nil
}

// FindByPhone 按手机号查找用户
func (r *userRepository) FindByPhone(phone string) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, "phone = ?", phone).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户 phone=%s", phone)
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户 username=%s", username)
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户 email=%s", email)
	}
	return &user, nil
}

// List 分页查询用户
func (r *userRepository) List(p pagination.Params) ([]model.User, int64, error) {
	users, total, err := paginate[model.User](r.db, noScope, "id ASC", p)
	if err != nil {
		return nil, 0, wrapDBError(err, "分页查询用户")
	}
	return users, total, nil
}

// Create 创建用户
func (r *userRepository) Create(user *model.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return wrapDBError(err, "创建用户")
	}
	return nil
}

// Update 保存用户信息
func (r *userRepository) Update(user *model.User) error {
	if err := r.db.Save(user).Error; err != nil {
		return wrapDBErrorf(err, "更新用户 id=%d", user.ID)
	}
	return nil
}

// UpdateStatus 修改审核状态
func (r *userRepository) UpdateStatus(id uint, status int8) error {
	res := r.db.Model(&model.User{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return wrapDBErrorf(res.Error, "更新用户状态 id=%d", id)
	}
	if res.RowsAffected == 0 {
		return wrapDBErrorf(gorm.ErrRecordNotFound, "更新用户状态 id=%d", id)
	}
	return nil
}
