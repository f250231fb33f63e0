package model

import "time"

// Category 图书分类
type Category struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	Name    string    `gorm:"column:name;type:varchar(255);not null;uniqueIndex:uk_category_name;comment:分类名" json:"name"`
	AddTime time.Time `gorm:"column:addtime;index;autoCreateTime;<-:create;comment:添加时间" json:"addtime"`
}

func (Category) TableName() string {
	return "category"
}
