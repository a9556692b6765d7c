package storage

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"tastybites/internal/domain"
)

// KafkaPublisher emits menu query events for downstream analytics.
type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishQuery(ctx context.Context, evt domain.QueryEvent) error {
	payload, _ := json.Marshal(evt)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(evt.Type),
		Value: payload,
	})
}
