package model

import "time"

// Review 书评，score 范围 [1,10] 由数据库 CHECK 约束兜底
type Review struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	UserID  uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	BookID  uint      `gorm:"column:book_id;not null;index" json:"book_id"`
	Score   int       `gorm:"column:score;not null;check:chk_review_score,score >= 1 AND score <= 10;comment:评分" json:"score"`
	Content string    `gorm:"column:content;type:varchar(200);comment:评论内容" json:"content"`
	AddTime time.Time `gorm:"column:addtime;index;autoCreateTime;<-:create" json:"addtime"`
}

func (Review) TableName() string {
	return "review"
}
