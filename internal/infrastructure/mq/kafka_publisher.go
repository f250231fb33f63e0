package mq

import (
	"context"
	"strings"
	"time"

	myconfig "library_server/internal/config"
	"library_server/pkg/constants"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// KafkaPublisher 基于 kafka-go Writer 的 Publisher
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher 根据配置创建 Writer
// 只负责写，审计消费方不在本服务内
func NewKafkaPublisher(cfg *myconfig.KafkaConfig) *KafkaPublisher {
	topic := cfg.OplogTopic
	if topic == "" {
		topic = constants.OplogTopic
	}
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(strings.Split(cfg.HostPort, ",")...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			WriteTimeout:           cfg.Timeout * time.Second,
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		},
	}
}

func (k *KafkaPublisher) Publish(ctx context.Context, key, value []byte) error {
	return k.writer.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: value,
	})
}

func (k *KafkaPublisher) Close() error {
	if err := k.writer.Close(); err != nil {
		zap.L().Error("close kafka writer", zap.Error(err))
		return err
	}
	return nil
}

// CreateTopic 主动建 topic，broker 关闭了自动建 topic 时使用
func CreateTopic(cfg *myconfig.KafkaConfig) error {
	conn, err := kafka.Dial("tcp", strings.Split(cfg.HostPort, ",")[0])
	if err != nil {
		return err
	}
	defer conn.Close()

	return conn.CreateTopics(kafka.TopicConfig{
		Topic:             cfg.OplogTopic,
		NumPartitions:     cfg.Partition,
		ReplicationFactor: 1,
	})
}

// Init 按 messageMode 选择实现
func Init(cfg *myconfig.KafkaConfig) Publisher {
	if strings.ToLower(cfg.MessageMode) != "kafka" {
		zap.L().Info("audit events disabled", zap.String("messageMode", cfg.MessageMode))
		return NewNoopPublisher()
	}
	if err := CreateTopic(cfg); err != nil {
		zap.L().Warn("create kafka topic failed", zap.String("topic", cfg.OplogTopic), zap.Error(err))
	}
	zap.L().Info("audit events go to kafka", zap.String("hostPort", cfg.HostPort), zap.String("topic", cfg.OplogTopic))
	return NewKafkaPublisher(cfg)
}

var _ Publisher = (*KafkaPublisher)(nil)
