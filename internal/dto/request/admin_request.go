package request

// SetUserStatusRequest 审核 / 拉黑用户
type SetUserStatusRequest struct {
	Status *int8  `json:"status" binding:"required,min=0,max=3"`
	Reason string `json:"reason" binding:"max=200"`
}

// ReviewDecisionRequest 审批借阅申请时附带的原因，写入 oplog
type ReviewDecisionRequest struct {
	Reason string `json:"reason" binding:"max=200"`
}
