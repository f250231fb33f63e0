package repository

import (
	"library_server/internal/model"
	"library_server/pkg/pagination"

	"gorm.io/gorm"
)

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository 创建关注关系 Repository
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(followerID, followedID uint) error {
	f := &model.Follow{FollowerID: followerID, FollowedID: followedID}
	if err := r.db.Create(f).Error; err != nil {
		return wrapDBErrorf(err, "关注 %d -> %d", followerID, followedID)
	}
	return nil
}

func (r *followRepository) Delete(followerID, followedID uint) error {
	res := r.db.Where("follower_id = ? AND followed_id = ?", followerID, followedID).Delete(&model.Follow{})
	if res.Error != nil {
		return wrapDBErrorf(res.Error, "取消关注 %d -> %d", followerID, followedID)
	}
	if res.RowsAffected == 0 {
		return wrapDBErrorf(gorm.ErrRecordNotFound, "取消关注 %d -> %d", followerID, followedID)
	}
	return nil
}

func (r *followRepository) Exists(followerID, followedID uint) (bool, error) {
	var n int64
	err := r.db.Model(&model.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&n).Error
	if err != nil {
		return false, wrapDBError(err, "查询关注关系")
	}
	return n > 0, nil
}

// ListFollowers 粉丝列表：follow.followed_id = userID，返回 follower 一侧的用户
func (r *followRepository) ListFollowers(userID uint, p pagination.Params) ([]model.User, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		return db.Joins("JOIN follow ON follow.follower_id = user.id").
			Where("follow.followed_id = ?", userID)
	}
	users, total, err := paginate[model.User](r.db, scope, "user.id ASC", p)
	if err != nil {
		return nil, 0, wrapDBErrorf(err, "查询粉丝 user=%d", userID)
	}
	return users, total, nil
}

// ListFollowed 关注列表：follow.follower_id = userID，返回 followed 一侧的用户
func (r *followRepository) ListFollowed(userID uint, p pagination.Params) ([]model.User, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		return db.Joins("JOIN follow ON follow.followed_id = user.id").
			Where("follow.follower_id = ?", userID)
	}
	users, total, err := paginate[model.User](r.db, scope, "user.id ASC", p)
	if err != nil {
		return nil, 0, wrapDBErrorf(err, "查询关注 user=%d", userID)
	}
	return users, total, nil
}
