package model

import "time"

// Follow 关注关系，follower 关注 followed
type Follow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"column:follower_id;not null;uniqueIndex:uk_follow_pair,priority:1;comment:关注者" json:"follower_id"`
	FollowedID uint      `gorm:"column:followed_id;not null;uniqueIndex:uk_follow_pair,priority:2;index;comment:被关注者" json:"followed_id"`
	AddTime    time.Time `gorm:"column:addtime;autoCreateTime;<-:create" json:"addtime"`
}

func (Follow) TableName() string {
	return "follow"
}
