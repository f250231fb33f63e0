package request

// CreateCategoryRequest 新建分类
type CreateCategoryRequest struct {
	Name   string `json:"name" binding:"required,max=255"`
	Reason string `json:"reason" binding:"max=200"`
}

// CreateBookRequest 新书入库
type CreateBookRequest struct {
	Isbn     string `json:"isbn" binding:"max=20"`
	Title    string `json:"title" binding:"required,max=100"`
	Author   string `json:"author" binding:"max=100"`
	ImageURL string `json:"image_url" binding:"omitempty,url,max=200"`
	CateID   uint   `json:"cate_id" binding:"required"`
	Reason   string `json:"reason" binding:"max=200"`
}

// UpdateBookRequest 修改图书，nil 字段不改
type UpdateBookRequest struct {
	Isbn     *string `json:"isbn" binding:"omitempty,max=20"`
	Title    *string `json:"title" binding:"omitempty,min=1,max=100"`
	Author   *string `json:"author" binding:"omitempty,max=100"`
	ImageURL *string `json:"image_url" binding:"omitempty,max=200"`
	CateID   *uint   `json:"cate_id" binding:"omitempty,min=1"`
	Reason   string  `json:"reason" binding:"max=200"`
}
