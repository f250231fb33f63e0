package request

// CreateBorrowRequest 借阅申请
type CreateBorrowRequest struct {
	BookID uint `json:"book_id" binding:"required"`
}

// CreateReviewRequest 发表书评
type CreateReviewRequest struct {
	Score   int    `json:"score" binding:"required,min=1,max=10"`
	Content string `json:"content" binding:"max=200"`
}

// CreateApplyBuyRequest 荐购申请
type CreateApplyBuyRequest struct {
	Isbn     string `json:"isbn" binding:"max=20"`
	Title    string `json:"title" binding:"required,max=100"`
	LeaderID uint   `json:"leader_id" binding:"required"`
	Reason   string `json:"reason" binding:"max=200"`
}
