package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"foodgram-go/internal/config"
	"foodgram-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var producer *kafka.Writer

// 菜谱索引事件动作
const (
	RecipeActionIndex  = "index"
	RecipeActionDelete = "delete"
)

// RecipeIndexEvent 菜谱索引事件消息体
// worker 消费后从数据库加载菜谱并同步到 Elasticsearch
type RecipeIndexEvent struct {
	RecipeID int64  `json:"recipe_id"`
	Action   string `json:"action"`
}

// InitProducer 初始化 Kafka 生产者
func InitProducer(cfg *config.KafkaConfig) error {
	producer = &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logger.Info("Kafka producer initialized",
		zap.Strings("brokers", cfg.Brokers),
	)

	return nil
}

// SendRecipeIndexEvent 发送菜谱索引事件到 Kafka
func SendRecipeIndexEvent(ctx context.Context, topic string, event *RecipeIndexEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal recipe index event: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(fmt.Sprintf("recipe-%d", event.RecipeID)),
		Value: payload,
	}

	if err := producer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to send recipe index event: %w", err)
	}

	logger.Info("Recipe index event sent",
		zap.Int64("recipe_id", event.RecipeID),
		zap.String("action", event.Action),
		zap.String("topic", topic),
	)

	return nil
}

// CloseProducer 关闭生产者
func CloseProducer() error {
	if producer == nil {
		return nil
	}
	logger.Info("Kafka producer closed")
	return producer.Close()
}
