// Package mq 负责管理员操作审计事件的投递
// Service 层只依赖 Publisher 接口，Kafka 关闭时使用空实现
package mq

import (
	"context"
	"encoding/json"
	"time"
)

// Publisher 消息发布接口
type Publisher interface {
	// Publish 写入一条消息，key 决定分区
	Publish(ctx context.Context, key, value []byte) error
	Close() error
}

// OplogEvent 审计事件，和 oplog 表一行对应
type OplogEvent struct {
	OplogID  uint      `json:"oplog_id"`
	AdminID  uint      `json:"admin_id"`
	IP       string    `json:"ip"`
	Action   string    `json:"action"`
	TargetID uint      `json:"target_id"`
	Reason   string    `json:"reason"`
	At       time.Time `json:"at"`
}

// Key 同一个管理员的事件落在同一分区，保证顺序
func (e OplogEvent) Key() []byte {
	b, _ := json.Marshal(e.AdminID)
	return b
}

// Encode 序列化为 JSON
func (e OplogEvent) Encode() ([]byte, error) {
	return json.Marshal(e)
}

// noopPublisher messageMode 为 none 时使用，直接丢弃
type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, []byte, []byte) error { return nil }
func (noopPublisher) Close() error                                   { return nil }

// NewNoopPublisher 返回不做任何事的 Publisher
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}
