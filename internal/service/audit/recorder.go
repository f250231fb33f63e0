// Package audit 记录管理员操作
// oplog 行与业务修改在同一事务内写入，提交之后再把事件投递到消息队列
package audit

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"library_server/internal/dao/db/repository"
	"library_server/internal/dto/request"
	"library_server/internal/infrastructure/mq"
	"library_server/internal/model"

	"go.uber.org/zap"
)

// 操作类型
const (
	ActionUserStatus     = "user_status"
	ActionCategoryCreate = "category_create"
	ActionBookCreate     = "book_create"
	ActionBookUpdate     = "book_update"
	ActionBookDelete     = "book_delete"
	ActionBorrowApprove  = "borrow_approve"
	ActionBorrowReject   = "borrow_reject"
	ActionApplyApprove   = "apply_buy_approve"
	ActionApplyReject    = "apply_buy_reject"
)

// oplog.reason 列宽
const maxReasonLen = 200

// Submitter 异步执行器，RedisCache 的 Worker Pool 实现了它
type Submitter interface {
	SubmitTask(action func())
}

// Recorder 操作日志记录器
type Recorder struct {
	publisher mq.Publisher
	async     Submitter
	timeout   time.Duration
}

// NewRecorder async 为 nil 时同步投递
func NewRecorder(publisher mq.Publisher, async Submitter) *Recorder {
	if publisher == nil {
		publisher = mq.NewNoopPublisher()
	}
	return &Recorder{publisher: publisher, async: async, timeout: 5 * time.Second}
}

// Append 在 tx 中追加一条 oplog，返回待投递的事件
func (r *Recorder) Append(tx *repository.Repositories, actor request.Actor, action string, targetID uint, reason string) (mq.OplogEvent, error) {
	row := &model.Oplog{
		AdminID: actor.ID,
		IP:      actor.IP,
		Reason:  FormatReason(action, targetID, reason),
	}
	if err := tx.Oplog.Create(row); err != nil {
		return mq.OplogEvent{}, err
	}
	return mq.OplogEvent{
		OplogID:  row.ID,
		AdminID:  actor.ID,
		IP:       actor.IP,
		Action:   action,
		TargetID: targetID,
		Reason:   reason,
		At:       row.AddTime,
	}, nil
}

// Publish 事务提交后调用，投递失败只记日志
func (r *Recorder) Publish(ev mq.OplogEvent) {
	send := func() {
		value, err := ev.Encode()
		if err != nil {
			zap.L().Error("encode oplog event", zap.Error(err))
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		if err := r.publisher.Publish(ctx, ev.Key(), value); err != nil {
			zap.L().Warn("publish oplog event failed", zap.Uint("oplog_id", ev.OplogID), zap.Error(err))
		}
	}
	if r.async == nil {
		send()
		return
	}
	r.async.SubmitTask(send)
}

// FormatReason oplog.reason 的存储格式：动作、目标、原因，超长截断
func FormatReason(action string, targetID uint, reason string) string {
	s := fmt.Sprintf("%s #%d", action, targetID)
	if reason != "" {
		s += ": " + reason
	}
	if utf8.RuneCountInString(s) <= maxReasonLen {
		return s
	}
	return string([]rune(s)[:maxReasonLen])
}
