package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/confluentinc/confluent-kafka-go/kafka"

	"translatable/internal/ports/output"
)

var _ output.Publisher = (*KafkaPublisher)(nil)

// KafkaPublisher emits translation change events so that downstream caches
// and search indexes can refresh the affected entity.
type KafkaPublisher struct {
	producer *kafka.Producer
	topic    string
}

type changeEvent struct {
	Action      string   `json:"action"`
	EntityAlias string   `json:"entity_alias"`
	EntityID    string   `json:"entity_id"`
	Locales     []string `json:"locales,omitempty"`
}

func NewKafkaPublisher(brokers, topic string) (*KafkaPublisher, error) {
	producer, err := kafka.NewProducer(&kafka.ConfigMap{"bootstrap.servers": brokers})
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return &KafkaPublisher{producer: producer, topic: topic}, nil
}

func (p *KafkaPublisher) TranslationsSaved(_ context.Context, alias, entityID string, locales []string) error {
	return p.publish(changeEvent{Action: "saved", EntityAlias: alias, EntityID: entityID, Locales: locales})
}

func (p *KafkaPublisher) TranslationsDeleted(_ context.Context, alias, entityID string) error {
	return p.publish(changeEvent{Action: "deleted", EntityAlias: alias, EntityID: entityID})
}

func (p *KafkaPublisher) publish(ev changeEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	msg := &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &p.topic, Partition: kafka.PartitionAny},
		Key:            []byte(ev.EntityAlias + ":" + ev.EntityID),
		Value:          payload,
	}
	if err := p.producer.Produce(msg, nil); err != nil {
		return fmt.Errorf("produce event: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() {
	p.producer.Flush(5000)
	p.producer.Close()
}
