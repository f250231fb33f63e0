package model

import "time"

// BorrowInfo 借阅申请
// Status: 0=待审核 1=通过 2=驳回，只能从 0 流转
type BorrowInfo struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	UserID  uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	BookID  uint      `gorm:"column:book_id;not null;index" json:"book_id"`
	Status  int8      `gorm:"column:status;not null;default:0;index" json:"status"`
	AddTime time.Time `gorm:"column:addtime;index;autoCreateTime;<-:create" json:"addtime"`
}

func (BorrowInfo) TableName() string {
	return "borrow_info"
}
