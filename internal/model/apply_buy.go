package model

import "time"

// ApplyBuy 荐购申请，由组长 (leader_id) 审批
type ApplyBuy struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Isbn     string    `gorm:"column:isbn;type:varchar(20)" json:"isbn"`
	Title    string    `gorm:"column:title;type:varchar(100);not null" json:"title"`
	UserID   uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	LeaderID uint      `gorm:"column:leader_id;not null;index" json:"leader_id"`
	Reason   string    `gorm:"column:reason;type:varchar(200)" json:"reason"`
	Status   int8      `gorm:"column:status;not null;default:0;index" json:"status"`
	AddTime  time.Time `gorm:"column:addtime;index;autoCreateTime;<-:create" json:"addtime"`
}

func (ApplyBuy) TableName() string {
	return "apply_buy"
}
