package kafka

import (
	"Craftstone/internal/api/config"
	"Craftstone/internal/pkg/es"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理所有 Kafka 消费者
type ConsumerManager struct {
	resourceConsumer sarama.ConsumerGroup
	resourceHandler  sarama.ConsumerGroupHandler
}

// NewConsumerManager 构造函数
func NewConsumerManager(cfg *config.Config, resourceESRepo es.ResourceRepo) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	resourceConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaResourceConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	resourceHandler := NewResourcesHandler(resourceESRepo)

	return &ConsumerManager{
		resourceConsumer: resourceConsumer,
		resourceHandler:  resourceHandler,
	}, nil
}

// Start 启动所有消费者
func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	go func() {
		topic := cfg.KafkaResourceConsumer.Topic
		log.Info("Resource consumer started", "topic", topic)
		for {
			if err := m.resourceConsumer.Consume(ctx, []string{topic}, m.resourceHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	err := m.resourceConsumer.Close()
	if err != nil {
		log.Error("Failed to close resource consumer", "err", err)
	}

	return nil
}
