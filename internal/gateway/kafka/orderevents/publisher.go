package orderevents

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"motoflash/internal/entities"
	"motoflash/pkg/logger"
)

type message struct {
	OrderID    string    `json:"orderId"`
	Status     string    `json:"status"`
	RiderID    *string   `json:"riderId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

type Publisher struct {
	log      logger.Logger
	producer sarama.SyncProducer
	topic    string
}

func New(log logger.Logger, producer sarama.SyncProducer, topic string) *Publisher {
	publisherLog := log.With(
		logger.NewField("component", "orderevents"),
		logger.NewField("topic", topic),
	)

	return &Publisher{
		log:      publisherLog,
		producer: producer,
		topic:    topic,
	}
}

// OrderStatusChanged is best-effort: a failed send is logged and dropped,
// the order transition itself is already committed.
func (p *Publisher) OrderStatusChanged(ctx context.Context, event entities.OrderStatusEvent) {
	if ctx.Err() != nil {
		return
	}

	payload, err := json.Marshal(message{
		OrderID:    event.OrderID,
		Status:     string(event.Status),
		RiderID:    event.RiderID,
		OccurredAt: event.OccurredAt,
	})
	if err != nil {
		p.log.With(
			logger.NewField("order_id", event.OrderID),
			logger.NewField("error", err),
		).Error("marshal order event")
		return
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		p.log.With(
			logger.NewField("order_id", event.OrderID),
			logger.NewField("status", event.Status),
			logger.NewField("error", err),
		).Error("publish order event")
		return
	}

	p.log.With(
		logger.NewField("order_id", event.OrderID),
		logger.NewField("status", event.Status),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	).Info("order event published")
}
