package model

import "time"

// Book 馆藏图书
// cate_id 外键指向 category
type Book struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Isbn     string `gorm:"column:isbn;type:varchar(20);index;comment:ISBN" json:"isbn"`
	Title    string `gorm:"column:title;type:varchar(100);not null;index;comment:书名" json:"title"`
	Author   string `gorm:"column:author;type:varchar(100);comment:作者" json:"author"`
	ImageURL string `gorm:"column:image_url;type:varchar(200);comment:封面" json:"image_url"`
	CateID   uint   `gorm:"column:cate_id;not null;index;comment:分类id" json:"cate_id"`

	AddTime time.Time `gorm:"column:addtime;index;autoCreateTime;<-:create;comment:入库时间" json:"addtime"`

	Category *Category `gorm:"foreignKey:CateID" json:"category,omitempty"`
}

func (Book) TableName() string {
	return "book"
}
